package assets

// FileType holds the content templates for one extension. Templates use
// {placeholder} markers; Variants are whole lines appended to the body.
type FileType struct {
	Templates []string
	Variants  []string
}

// FallbackExtension names the FileTypes entry used for unknown extensions.
const FallbackExtension = ".txt"

// FileTypes maps an extension to its templates.
var FileTypes = map[string]FileType{
	".txt": {
		Templates: []string{
			"File: {filename}\nCreated: {date}\n\n{content}",
			"System configuration file.\nVersion: {version}\n{content}",
			"This file holds arbitrary data.\nCode: {code}\n{content}",
		},
		Variants: []string{
			"System is operating normally.",
			"All parameters within limits.",
			"Backup completed successfully.",
			"No update required.",
			"File integrity check... OK.",
		},
	},
	".dat": {
		Templates: []string{
			"DATA_FILE:{id}\nTIMESTAMP:{time}\n{content}",
			"BINARY_DATA:{binary}\n{content}",
		},
		Variants: []string{
			"01010100 01101000 01100101 00100000 01010110 01101111 01101001 01100100",
			"7A 68 65 20 56 6F 69 64 20 61 77 61 69 74 73",
			"U29tZSBzZWNyZXQgZGF0YSBpcyBzdG9yZWQgaGVyZQ==",
		},
	},
	".cfg": {
		Templates: []string{
			"enable_{feature}={value}\n{content}",
			"setting_{name}={value}\n{content}",
		},
		Variants: []string{
			"graphics=high\nsound=enabled\ndifficulty=normal",
			"autosave=true\nlanguage=en\ntheme=dark",
		},
	},
	".log": {
		Templates: []string{
			"[{timestamp}] {level}: {message}\n{content}",
			"Log entry #{id}\n{content}",
		},
		Variants: []string{
			"System loaded successfully",
			"New peripheral detected",
			"Cleaning temporary files",
		},
	},
}

// Word pools for template placeholders.
var (
	Features     = []string{"feature_a", "feature_b", "feature_c"}
	Values       = []string{"true", "false", "enabled", "disabled"}
	SettingNames = []string{"quality", "resolution", "volume"}
	LogLevels    = []string{"INFO", "WARNING", "ERROR"}
	LogMessages  = []string{"System started", "Check completed", "Operation successful"}
)
