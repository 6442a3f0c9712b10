package archive

import (
	"encoding/json"
	"fmt"
	"log"
	"os"
	"path/filepath"

	"reelstreak/internal/models"
)

// Archive holds the static puzzle data for all three games, loaded once at
// startup and never mutated. Slice order is the addressing scheme for daily
// selection, so entries keep their file order exactly; publishing a new
// puzzle means appending to the end of the file.
type Archive struct {
	Roles   []models.RolesPuzzle
	Degrees []models.DegreesPuzzle
	Ratings []models.RatingEntry
}

// File names expected inside the archive data directory.
const (
	rolesFile   = "roles.json"
	degreesFile = "degrees.json"
	ratingsFile = "ratings.json"
)

// Load reads the puzzle archives from JSON files in dir. Malformed entries
// are skipped with a log line rather than aborting startup; rating entries
// without two binary thumb verdicts are excluded from the thumbs pool
// entirely. A missing file leaves that game's archive empty, which the
// selectors treat as "no puzzle today".
func Load(dir string) (*Archive, error) {
	a := &Archive{}

	var rawRoles []models.RolesPuzzle
	if err := readJSONFile(filepath.Join(dir, rolesFile), &rawRoles); err != nil {
		return nil, err
	}
	for i, p := range rawRoles {
		if err := p.Validate(); err != nil {
			log.Printf("Skipping roles puzzle %d: %v", i, err)
			continue
		}
		a.Roles = append(a.Roles, p)
	}

	var rawDegrees []models.DegreesPuzzle
	if err := readJSONFile(filepath.Join(dir, degreesFile), &rawDegrees); err != nil {
		return nil, err
	}
	for i, p := range rawDegrees {
		if err := p.Validate(); err != nil {
			log.Printf("Skipping degrees puzzle %d: %v", i, err)
			continue
		}
		a.Degrees = append(a.Degrees, p)
	}

	var rawRatings []models.RatingEntry
	if err := readJSONFile(filepath.Join(dir, ratingsFile), &rawRatings); err != nil {
		return nil, err
	}
	for _, e := range rawRatings {
		if !e.Eligible() {
			continue
		}
		a.Ratings = append(a.Ratings, e)
	}

	log.Printf("Archive loaded: %d roles, %d degrees, %d eligible ratings",
		len(a.Roles), len(a.Degrees), len(a.Ratings))
	return a, nil
}

// readJSONFile decodes a JSON array file into dst. A missing file is not an
// error; a file that exists but does not parse is.
func readJSONFile(path string, dst interface{}) error {
	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return fmt.Errorf("failed to read archive file %s: %w", path, err)
	}
	if err := json.Unmarshal(content, dst); err != nil {
		return fmt.Errorf("failed to parse archive file %s: %w", path, err)
	}
	return nil
}
