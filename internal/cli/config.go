package cli

// Config stores CLI options for a single generation run.
type Config struct {
	Types       []string
	Path        string
	Filename    string
	Tag         string
	CopyTypes   []string
	Verbose     bool
	ShowVersion bool
}

// OutputFilename returns destination file path for generator layer.
func (c *Config) OutputFilename() string {
	return c.Filename
}
