package events

const (
	NamePackageRatingChanged = "package.rating_changed"
	NamePackageChanged       = "package.changed"
	NameDestinationChanged   = "destination.changed"
)

// PackageRatingChanged follows any review mutation that may have moved a
// package's aggregate. DestinationSlug is empty for unlinked packages.
type PackageRatingChanged struct {
	PackageID       string
	Slug            string
	DestinationSlug string
}

func (PackageRatingChanged) Name() string { return NamePackageRatingChanged }

// PackageChanged follows package create, update and delete. Slugs lists
// every slug the package was reachable under before and after the change;
// DestinationSlugs likewise covers a move between destinations.
type PackageChanged struct {
	PackageID        string
	Slugs            []string
	DestinationSlugs []string
}

func (PackageChanged) Name() string { return NamePackageChanged }

type DestinationChanged struct {
	DestinationID string
	Slugs         []string
}

func (DestinationChanged) Name() string { return NameDestinationChanged }
