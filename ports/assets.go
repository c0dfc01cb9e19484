package ports

import "mbticonsultant/domain/periodic"

// AssetStore locates the image assets shown beside the chart
type AssetStore interface {
	IconPath(code periodic.TypeCode) (string, error)
	CheckIcon(code periodic.TypeCode) error
	SupplementaryPath() string
	CheckSupplementary() error
}
