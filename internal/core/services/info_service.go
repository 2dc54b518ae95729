package services

// InfoService reports application metadata. The version string is captured
// from configuration at construction and never changes afterwards.
type InfoService struct {
	version string
}

// NewInfoService creates an InfoService reporting the given version.
func NewInfoService(version string) *InfoService {
	return &InfoService{version: version}
}

// Version returns the application version string.
func (s *InfoService) Version() string {
	return s.version
}
