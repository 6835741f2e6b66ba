package app

const (
	Name           = "hovertip"
	SourceURL      = "https://github.com/andrewthehan/hovertip"
	ConfigFilename = "config.json"
	LogFilename    = "demo.log"
)
