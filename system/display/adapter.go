package display

// Adapter describes a video controller and the mode it currently drives
type Adapter struct {
	Name          string
	DriverVersion string
	Current       Mode
}
