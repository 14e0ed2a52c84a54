package router

// Log prefixes
const (
	LogPrefixClassify = "internal.router.Classify"
)

// Defaults applied when an utterance names an entity type but omits details.
const (
	DefaultVerb          = "show"
	DefaultStopName      = "New Stop"
	DefaultPathName      = "New Path"
	DefaultPlate         = "XX-XX-XXXX"
	DefaultDriverName    = "New Driver"
	DefaultDriverLicense = "DL0000000"
	DefaultDriverPhone   = "9000000000"
	DefaultCapacity      = 50
	DefaultVehicleModel  = "Standard Bus"
)
