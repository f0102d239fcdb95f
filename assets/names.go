package assets

// DirectoryNames is the pool for "readable" directory names. A number 1-99 may
// be appended.
var DirectoryNames = []string{
	"System", "User", "Program", "Data", "Config", "Temp",
	"Backup", "Archive", "Secret", "Public", "Logs", "Cache",
}

// TechPrefixes start a synthetic directory name such as DATA_V3.
var TechPrefixes = []string{"DIR", "FOLDER", "CAT", "MOD", "SEC", "DATA"}

// TechWords are the word-like suffixes (_ALPHA, _RC, ...).
var TechWords = []string{"ALPHA", "BETA", "RC", "FINAL"}

// FileNames is the stem pool for ordinary files.
var FileNames = []string{
	"README", "CONFIG", "SETUP", "INSTALL", "HELP", "INFO",
	"DATA", "TEMP", "LOG", "ERROR", "DEBUG", "BACKUP", "NOTE",
}

// SystemFileNames is the stem pool for files inside system directories.
var SystemFileNames = []string{"BOOT", "CONFIG", "SETUP", "INSTALL", "LOGON", "SYSTEM"}

// Extensions is the extension pool, leading dot included.
var Extensions = []string{".txt", ".dat", ".cfg", ".sys", ".bin", ".log", ".tmp"}

// BinaryExtensions mark a file as binary-like.
var BinaryExtensions = []string{".bin", ".dat"}

// SystemDir is one fixed directory created directly under the root.
type SystemDir struct {
	Name    string
	Special bool
	Hidden  bool
}

// SystemDirs are created in this order on every run.
var SystemDirs = []SystemDir{
	{Name: "System32", Special: true},
	{Name: "Program Files"},
	{Name: "Users"},
	{Name: "Windows", Special: true},
	{Name: "Temp", Special: true, Hidden: true},
}
