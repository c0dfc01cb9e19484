package assets

import (
	"fmt"
	"image"
	_ "image/png"
	"os"
	"path/filepath"
	"strings"

	"mbticonsultant/domain/core"
	"mbticonsultant/domain/periodic"
	"mbticonsultant/internal"
	"mbticonsultant/internal/errors"
)

// Config locates the image assets
type Config struct {
	IconDir    string `json:"icon_dir" yaml:"icon_dir"`
	PairsImage string `json:"pairs_image" yaml:"pairs_image"`
}

// DefaultConfig returns the conventional asset locations
func DefaultConfig() Config {
	return Config{
		IconDir:    "MBTI_icons",
		PairsImage: "mbti-pairs.png",
	}
}

// Store resolves type icons by the <iconDir>/<typeCode>.png convention
type Store struct {
	config Config
	logger *internal.Logger
}

// NewStore creates an asset store
func NewStore(config Config, logger *internal.Logger) *Store {
	if logger == nil {
		logger = internal.DefaultLogger
	}
	return &Store{config: config, logger: logger}
}

// IconPath returns where the icon of a type lives
func (s *Store) IconPath(code periodic.TypeCode) (string, error) {
	name := string(code)
	if name == "" || strings.ContainsAny(name, `/\`) || strings.Contains(name, "..") {
		return "", errors.InvalidInput(fmt.Sprintf("invalid type code %q", name))
	}
	return filepath.Join(s.config.IconDir, name+".png"), nil
}

// CheckIcon verifies that a type's icon exists and decodes as a PNG
func (s *Store) CheckIcon(code periodic.TypeCode) error {
	path, err := s.IconPath(code)
	if err != nil {
		return err
	}
	if err := checkPNG(path); err != nil {
		s.logger.Warn("[Assets] icon for %s unavailable: %v", code, err)
		return err
	}
	return nil
}

// SupplementaryPath returns the location of the type-pairs image
func (s *Store) SupplementaryPath() string {
	return s.config.PairsImage
}

// CheckSupplementary verifies the type-pairs image
func (s *Store) CheckSupplementary() error {
	return checkPNG(s.config.PairsImage)
}

func checkPNG(path string) error {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%w: %s", core.ErrIconNotFound, path)
		}
		return fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer file.Close()

	_, format, err := image.DecodeConfig(file)
	if err != nil {
		return fmt.Errorf("%w: %s: %v", core.ErrInvalidIcon, path, err)
	}
	if format != "png" {
		return fmt.Errorf("%w: %s is %s", core.ErrInvalidIcon, path, format)
	}
	return nil
}
