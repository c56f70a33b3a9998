package ports

// RootLocator is the project-root discovery collaborator.
//
//go:generate mockgen -source=locator.go -destination=mocks/mock_locator.go -package=mocks
type RootLocator interface {
	// Locate walks up from the working directory and returns the first
	// ancestor directory containing a file with the given marker name.
	// It returns domain.ErrRootNotFound when no ancestor contains the marker.
	Locate(markerFileName string) (string, error)
}
