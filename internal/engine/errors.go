package engine

// unsupportedModelError signals a model name that maps to no known family.
type unsupportedModelError struct{ model string }

func (e unsupportedModelError) Error() string { return "unsupported model: " + e.model }

// ErrUnsupportedModel constructs an unsupportedModelError.
func ErrUnsupportedModel(model string) error { return unsupportedModelError{model: model} }

// IsUnsupportedModel reports whether err indicates an unknown model family.
func IsUnsupportedModel(err error) bool {
	_, ok := err.(unsupportedModelError)
	return ok
}

// artifactsMissingError signals required on-disk artifacts were not found.
type artifactsMissingError struct{ msg string }

func (e artifactsMissingError) Error() string { return e.msg }

// ErrArtifactsMissing constructs an artifactsMissingError.
func ErrArtifactsMissing(msg string) error { return artifactsMissingError{msg: msg} }

// IsArtifactsMissing reports whether err indicates incomplete model artifacts.
func IsArtifactsMissing(err error) bool {
	_, ok := err.(artifactsMissingError)
	return ok
}
