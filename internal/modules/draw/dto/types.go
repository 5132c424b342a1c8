package dto

type DrawInput struct {
	Count string
}

type BallOutput struct {
	Value   int
	Stagger int
}

type DrawOutput struct {
	BatchID   string
	Balls     []BallOutput
	Drawn     int
	Remaining int
}

const (
	TargetFile      = "file"
	TargetClipboard = "clipboard"
	TargetStdout    = "stdout"
)

// ExportInput selects the delivery target; empty means TargetFile.
type ExportInput struct {
	Target string
}

type ExportOutput struct {
	Name     string
	MIMEType string
	Content  string
	Location string
}

type StatusOutput struct {
	SessionID string
	Values    []int
	Drawn     int
	Remaining int
}

// Notice is the user-facing text for a rejected action. ResetCount, when
// non-zero, is the value the count input should be reset to.
type Notice struct {
	Message    string
	ResetCount int
}
