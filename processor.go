package lotlist

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/alnah/go-lotlist/internal/fileutil"
)

// Listing is one rendered listing and where it was written.
type Listing struct {
	Identifier string
	Text       string
	Path       string
	PhotoPath  string
}

// Processor turns rows into listing files in an output directory.
// It is not safe for concurrent use; rows are handled in input order.
type Processor struct {
	outputDir string
	photosDir string
	cfg       settings
}

// NewProcessor creates a Processor writing to outputDir and looking up
// photos in photosDir. The output directory must already exist.
func NewProcessor(outputDir, photosDir string, opts ...Option) *Processor {
	p := &Processor{
		outputDir: outputDir,
		photosDir: photosDir,
		cfg:       defaultSettings(),
	}
	for _, opt := range opts {
		opt(&p.cfg)
	}
	return p
}

// Process renders every qualifying row with template. Rows without a lot
// number are skipped and counted. The context is checked between rows; on
// cancellation the partial summary is returned with ctx.Err(). Files
// already written are left in place.
func (p *Processor) Process(ctx context.Context, template string, rows []Row) (*Summary, error) {
	sum := &Summary{}
	used := make(map[string]bool, len(rows))
	log := p.cfg.logger

	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return sum, err
		}
		sum.RowsTotal++

		lotNo := strings.TrimSpace(row.LotNo())
		if lotNo == "" {
			sum.RowsSkipped++
			log.Debug("row skipped: no lot number", zap.Int("line", row.Line))
			p.observe(RowResult{Line: row.Line, Skipped: true})
			continue
		}

		id := Identifier(lotNo)
		name, collided, err := p.claim(used, id)
		if err != nil {
			return sum, fmt.Errorf("%w: line %d: lot %q", err, row.Line, lotNo)
		}
		if collided {
			sum.Collisions++
			log.Warn("identifier collision",
				zap.Int("line", row.Line),
				zap.String("lot_no", lotNo),
				zap.String("identifier", id),
				zap.String("written_as", name),
				zap.String("policy", string(p.cfg.policy)))
			if name == id {
				if err := p.removePhotos(name); err != nil {
					return sum, err
				}
			}
		}

		listing, err := p.write(template, row, name)
		if err != nil {
			return sum, err
		}
		sum.ListingsCreated++

		if match, ok := FindPhoto(p.photosDir, lotNo); ok {
			dst := filepath.Join(p.outputDir, ListingName(name, match.Ext))
			if err := fileutil.CopyFile(match.Path, dst); err != nil {
				return sum, fmt.Errorf("%w: %s: %v", ErrCopyPhoto, match.Path, err)
			}
			listing.PhotoPath = dst
			sum.PhotosMatched++
		}

		log.Debug("listing written",
			zap.Int("line", row.Line),
			zap.String("identifier", name),
			zap.Bool("photo", listing.PhotoPath != ""))
		p.observe(RowResult{
			Line:        row.Line,
			LotNo:       lotNo,
			Identifier:  name,
			ListingPath: listing.Path,
			PhotoPath:   listing.PhotoPath,
			Collision:   collided,
		})
	}

	return sum, nil
}

// claim reserves a file identifier for id according to the collision policy.
func (p *Processor) claim(used map[string]bool, id string) (name string, collided bool, err error) {
	if !used[id] {
		used[id] = true
		return id, false, nil
	}
	switch p.cfg.policy {
	case CollisionError:
		return "", true, ErrIdentifierCollision
	case CollisionSuffix:
		for n := 2; ; n++ {
			candidate := id + "_" + strconv.Itoa(n)
			if !used[candidate] {
				used[candidate] = true
				return candidate, true, nil
			}
		}
	default:
		return id, true, nil
	}
}

// removePhotos deletes photos copied for an identifier that is about to be
// rewritten, so the replacement listing is never shown with the previous
// lot's photo.
func (p *Processor) removePhotos(name string) error {
	for _, ext := range PhotoExtensions {
		path := filepath.Join(p.outputDir, ListingName(name, ext))
		if err := os.Remove(path); err != nil && !errors.Is(err, os.ErrNotExist) {
			return fmt.Errorf("%w: removing %s: %v", ErrCopyPhoto, path, err)
		}
	}
	return nil
}

func (p *Processor) write(template string, row Row, name string) (Listing, error) {
	l := Listing{
		Identifier: name,
		Text:       Render(template, row),
		Path:       filepath.Join(p.outputDir, ListingName(name, p.cfg.extension)),
	}
	if err := os.WriteFile(l.Path, []byte(l.Text), fileutil.FilePermissions); err != nil {
		return Listing{}, fmt.Errorf("%w: %s: %v", ErrWriteListing, l.Path, err)
	}
	return l, nil
}

func (p *Processor) observe(r RowResult) {
	if p.cfg.observer != nil {
		p.cfg.observer(r)
	}
}
