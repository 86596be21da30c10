package exitcode

const (
	Success         = 0
	UsageError      = 1
	ParseError      = 2
	FilesystemError = 3
	DBConnError     = 4
	LoadError       = 5
)
