package config

import "io/fs"

// -----------------------------------------------------------------------------
// Build Information
// -----------------------------------------------------------------------------

// Build variables are injected via -ldflags.
var (
	Version = "dev"
	Commit  = "none"
	Date    = "unknown"
)

// ProdID identifies the generator in exported calendars.
var ProdID = "-//Go Contacts//Engine " + Version + "//EN"

// -----------------------------------------------------------------------------
// Application Constants
// -----------------------------------------------------------------------------

const (
	AppName         = "Go Contacts"
	AppID           = "com.github.tartampluch.go-contacts"
	LogFileName     = "app.log"
	DefaultBookFile = "addressbook.json"
)

// -----------------------------------------------------------------------------
// Exit Codes
// -----------------------------------------------------------------------------

const (
	ExitCodeSuccess = 0
	ExitCodeError   = 1
)

// -----------------------------------------------------------------------------
// System & File Permissions
// -----------------------------------------------------------------------------

const (
	// FilePermUserRW represents -rw------- (Read/Write for owner only).
	// Used for the address book, exports and logs.
	FilePermUserRW fs.FileMode = 0600

	// DirPermUserRWX represents drwx------ (Read/Write/Exec for owner only).
	DirPermUserRWX fs.FileMode = 0700

	// TempFileSuffix is appended to a target path while it is being written.
	TempFileSuffix = ".tmp"
)

// -----------------------------------------------------------------------------
// CLI Flags & Descriptions
// -----------------------------------------------------------------------------

const (
	FlagVersion      = "version"
	FlagDebug        = "debug"
	FlagFile         = "file"
	FlagLang         = "lang"
	FlagToday        = "today"
	FlagDescVersion  = "Show application version and exit"
	FlagDescDebug    = "Enable debug logging to stderr"
	FlagDescFile     = "Path of the address book file"
	FlagDescLang     = "Language of the messages (en, uk)"
	FlagDescToday    = "Pin today's date (DD.MM.YYYY) for birthday queries"
	MsgVersionOutput = "%s version %s (commit %s, built %s, %s/%s)\n"
)

// SupportedLanguages defines the list of available message languages (ISO 639-1).
var SupportedLanguages = []string{"en", "uk"}

const DefaultLanguage = "en"

// -----------------------------------------------------------------------------
// Commands
// -----------------------------------------------------------------------------

const (
	CmdHello        = "hello"
	CmdHelp         = "help"
	CmdAdd          = "add"
	CmdChange       = "change"
	CmdPhone        = "phone"
	CmdAll          = "all"
	CmdDelete       = "delete"
	CmdRemovePhone  = "remove-phone"
	CmdAddBirthday  = "add-birthday"
	CmdShowBirthday = "show-birthday"
	CmdBirthdays    = "birthdays"
	CmdExportVCard  = "export-vcf"
	CmdImportVCard  = "import-vcf"
	CmdExportICal   = "export-ics"
	CmdClose        = "close"
	CmdExit         = "exit"
)

// -----------------------------------------------------------------------------
// Translation Keys (I18n)
// -----------------------------------------------------------------------------

const (
	TKeyWelcome        = "welcome"
	TKeyPrompt         = "prompt"
	TKeyHello          = "hello"
	TKeyHelp           = "help"
	TKeyGoodbye        = "goodbye"
	TKeyInvalidCommand = "invalid_command"
	TKeyContactAdded   = "contact_added"
	TKeyContactChanged = "contact_changed"
	TKeyContactDeleted = "contact_deleted"
	TKeyPhoneRemoved   = "phone_removed"
	TKeyBirthdayAdded  = "birthday_added"
	TKeyNoContacts     = "no_contacts"
	TKeyNoUpcoming     = "no_upcoming"
	TKeyExported       = "exported"          // Requires Count, Path
	TKeyImported       = "imported"          // Requires Count, Skipped, Path
	TKeyCalendarSaved  = "calendar_saved"    // Requires Path
	TKeyEvtSummary     = "event_summary"     // Requires Name
	TKeyEvtSummaryAge  = "event_summary_age" // Requires Name, Age

	// Fixed error messages shown to the user
	TKeyErrArity      = "err_arity"
	TKeyErrNotFound   = "err_not_found"
	TKeyErrValidation = "err_validation"
	TKeyErrStorage    = "err_storage" // Requires Error
	TKeyErrSave       = "err_save"    // Requires Error
)

// MessageKeys lists every translation key the application looks up.
var MessageKeys = []string{
	TKeyWelcome, TKeyPrompt, TKeyHello, TKeyHelp, TKeyGoodbye,
	TKeyInvalidCommand, TKeyContactAdded, TKeyContactChanged,
	TKeyContactDeleted, TKeyPhoneRemoved, TKeyBirthdayAdded,
	TKeyNoContacts, TKeyNoUpcoming, TKeyExported, TKeyImported,
	TKeyCalendarSaved, TKeyEvtSummary, TKeyEvtSummaryAge,
	TKeyErrArity, TKeyErrNotFound, TKeyErrValidation, TKeyErrStorage,
	TKeyErrSave,
}

// -----------------------------------------------------------------------------
// Default Values & Business Logic
// -----------------------------------------------------------------------------

const (
	PhoneDigits         = 10
	UpcomingWindowDays  = 7
	SaturdayShiftDays   = 2
	SundayShiftDays     = 1
	SnapshotVersion     = 1
	SnapshotStorage     = "json_snapshot"
	UIDSalt             = "go-contacts-v1-" // Salt for deterministic UID generation
	UIDHashLength       = 16
	FormatHashInput     = "%s|%s|%s"
	FormatUID           = "%s-%d@%s"
	FallbackName        = "Unknown"
	FallbackSummary     = "Birthday: %s"
	FallbackSummaryAge  = "Birthday: %s (%d)"
	EmptyBirthdayMarker = "none"
	PhoneSeparator      = "; "
	FormatRecord        = "Contact name: %s, phones: %s, birthday: %s"
	FormatUpcomingLine  = "Name: %s - DR: %s"
)

// -----------------------------------------------------------------------------
// Standards: iCalendar & vCard
// -----------------------------------------------------------------------------

// StubVCalendar is the minimal valid iCalendar object written when no contact has a birthday.
var StubVCalendar = "BEGIN:VCALENDAR\r\nVERSION:2.0\r\nPRODID:" + ProdID + "\r\nEND:VCALENDAR\r\n"

const (
	ICalVersion = "2.0"
	ICalCalName = "Birthdays"
	ICalMethod  = "PUBLISH"
	ICalScale   = "GREGORIAN"
	ICalDomain  = "gocontacts"

	PropUID        = "UID"
	PropSummary    = "SUMMARY"
	PropDTStart    = "DTSTART"
	PropDTStamp    = "DTSTAMP"
	PropVersion    = "VERSION"
	PropProdid     = "PRODID"
	PropXWRCalName = "X-WR-CALNAME"
	PropCalScale   = "CALSCALE"
	PropMethod     = "METHOD"
)

// -----------------------------------------------------------------------------
// Data Formats
// -----------------------------------------------------------------------------

const (
	// DateFormatBirthday is the only layout accepted from the command line.
	DateFormatBirthday = "02.01.2006"

	// Date layouts used for vCard BDAY fields
	DateFormatFullDash  = "2006-01-02"
	DateFormatFullBasic = "20060102"
	DateFormatFullT     = "2006-01-02T15:04:05Z"

	// PatternPhone matches exactly PhoneDigits ASCII digits.
	PatternPhone = `^[0-9]{10}$`
)

// -----------------------------------------------------------------------------
// Error Messages (Technical/Logs)
// -----------------------------------------------------------------------------

const (
	ErrInvalidName     = "invalid name"
	ErrInvalidPhone    = "invalid phone"
	ErrInvalidBirthday = "invalid birthday"
	ErrPhoneDigits     = "must contain exactly 10 digits"
	ErrBirthdayLayout  = "must be a real date in DD.MM.YYYY format"
	ErrSnapshotRead    = "failed to read address book"
	ErrSnapshotWrite   = "failed to write address book"
	ErrSnapshotDecode  = "failed to decode address book"
	ErrSnapshotVersion = "unsupported address book version"
	ErrSnapshotRecord  = "invalid record in address book"
	ErrVCardParse      = "failed to parse vCard stream"
	ErrVCardEncode     = "failed to encode vCard"
	ErrICalEncode      = "failed to encode iCalendar data"
	ErrDateParse       = "unable to parse date"
	ErrLogFile         = "failed to open log file"
	ErrCacheDir        = "could not determine user cache dir"
	ErrCreateDir       = "could not create app cache dir"
	ErrAppFailed       = "application failed unexpectedly"
	ErrLocalesAccess   = "failed to access embedded locales"
	ErrLocaleLoad      = "failed to load locale file"
	ErrReadInput       = "failed to read input"
	ErrWriteOutput     = "failed to write output"
	ErrUnexpected      = "unexpected command failure"
	ErrInvalidToday    = "invalid -today date, expected DD.MM.YYYY"
)

// -----------------------------------------------------------------------------
// Log Messages
// -----------------------------------------------------------------------------

const (
	MsgAppStarting   = "Starting application"
	MsgAppStop       = "Application stopped gracefully"
	MsgBookLoaded    = "Address book loaded"
	MsgBookMissing   = "Address book file not found, starting empty"
	MsgBookSaved     = "Address book saved"
	MsgCommand       = "Command dispatched"
	MsgCommandFailed = "Command rejected"
	MsgSaveFailed    = "Saving address book failed"
	MsgSkippedCard   = "Skipping malformed vCard"
	MsgSkippedPhone  = "Skipping invalid phone number"
	MsgSkippedDate   = "Skipping invalid date format"
	MsgImportDone    = "vCard import finished"
	MsgExportDone    = "vCard export finished"
	MsgGenSuccess    = "Calendar generation successful"
	MsgLocaleSkip    = "Skipping non-locale file"
	MsgLocaleLoaded  = "Locale loaded successfully"
	MsgTransMissing  = "Missing translation key"
	MsgLangFallback  = "Requested language unavailable, using default"
	MsgLogWarning    = "Warning: %s at %s: %v\n"
)

// -----------------------------------------------------------------------------
// Structured Logging Keys (slog)
// -----------------------------------------------------------------------------

const (
	LogKeyComponent = "component"
	LogKeyError     = "error"
	LogKeyFile      = "file"
	LogKeyLang      = "lang"
	LogKeyKey       = "key"
	LogKeyValue     = "value"
	LogKeyName      = "name"
	LogKeyCommand   = "command"
	LogKeyArgs      = "args"
	LogKeyCount     = "count"
	LogKeySkipped   = "skipped"
	LogKeyEvents    = "events"
	LogKeyVersion   = "version"

	// Startup Info Keys
	LogKeyBuild = "build"
	LogKeyApp   = "app"
	LogKeyGoVer = "go_version"
	LogKeyEnv   = "env"
	LogKeyOS    = "os"
	LogKeyArch  = "arch"
	LogKeyPID   = "pid"
)

// -----------------------------------------------------------------------------
// Log Components
// -----------------------------------------------------------------------------

const (
	CompMain    = "main"
	CompCLI     = "cli"
	CompStorage = "storage"
	CompEngine  = "engine"
	CompI18n    = "i18n"
)
