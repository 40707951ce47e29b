package shared

const (
	// AppName is used as the toast application id and in log lines
	AppName = "ProperResolutions"
)
