package export

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/MrJamesThe3rd/backoffice/internal/document"
	"github.com/MrJamesThe3rd/backoffice/internal/render"
)

const ContentTypeZip = "application/zip"

var (
	// ErrNoDocuments is returned when a bulk export is asked for no ids.
	ErrNoDocuments = errors.New("no documents selected")

	ErrUnknownKind = errors.New("unknown document kind")
)

// RenderError aborts an export when a document fails to render.
type RenderError struct {
	Number string
	Err    error
}

func (e *RenderError) Error() string {
	return fmt.Sprintf("rendering %s: %v", e.Number, e.Err)
}

func (e *RenderError) Unwrap() error {
	return e.Err
}

// Printable is a loaded document ready to hand to a renderer.
type Printable struct {
	Number string
	View   any
}

//go:generate mockgen -source=service.go -destination=source_mock.go -package=export
type Source interface {
	// Load returns an error wrapping document.ErrNotFound for unknown ids.
	Load(ctx context.Context, id uuid.UUID) (*Printable, error)
}

// Profile describes how one document kind is exported.
type Profile struct {
	Kind     document.Kind
	Source   Source
	Renderer render.Renderer
	Format   render.Format
	Template string
	// Entry prefixes every file name, e.g. "invoice".
	Entry string
	// ArchiveName names the bulk download, e.g. "invoices.zip".
	ArchiveName string
}

func (p Profile) fileName(number string) string {
	return p.Entry + "_" + document.FileSafe(number) + p.Format.Ext()
}

// File is a rendered download.
type File struct {
	Name        string
	ContentType string
	Data        []byte
}

type Service struct {
	profiles   map[document.Kind]Profile
	newArchive func() Archive
}

func NewService(profiles ...Profile) *Service {
	s := &Service{
		profiles:   make(map[document.Kind]Profile, len(profiles)),
		newArchive: NewZipArchive,
	}

	for _, p := range profiles {
		s.profiles[p.Kind] = p
	}

	return s
}

func (s *Service) profile(kind document.Kind) (Profile, error) {
	p, ok := s.profiles[kind]
	if !ok {
		return Profile{}, fmt.Errorf("%w: %q", ErrUnknownKind, kind)
	}

	return p, nil
}

// Bulk renders the documents in ids order into one archive. Unknown ids are
// skipped. Any render failure discards the whole archive.
func (s *Service) Bulk(ctx context.Context, kind document.Kind, ids []uuid.UUID) (*File, error) {
	if len(ids) == 0 {
		return nil, ErrNoDocuments
	}

	p, err := s.profile(kind)
	if err != nil {
		return nil, err
	}

	archive := s.newArchive()
	added := 0

	for _, id := range ids {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		doc, err := p.Source.Load(ctx, id)
		if errors.Is(err, document.ErrNotFound) {
			slog.Debug("skipping missing document", "kind", kind, "id", id)
			continue
		}

		if err != nil {
			return nil, fmt.Errorf("loading %s %s: %w", kind, id, err)
		}

		data, err := p.Renderer.Render(p.Template, doc.View)
		if err != nil {
			return nil, &RenderError{Number: doc.Number, Err: err}
		}

		if err := archive.Add(p.fileName(doc.Number), data); err != nil {
			return nil, err
		}

		added++
	}

	data, err := archive.Seal()
	if err != nil {
		return nil, err
	}

	slog.Info("bulk export", "kind", kind, "requested", len(ids), "exported", added)

	return &File{Name: p.ArchiveName, ContentType: ContentTypeZip, Data: data}, nil
}

// Print renders a single document.
func (s *Service) Print(ctx context.Context, kind document.Kind, id uuid.UUID) (*File, error) {
	p, err := s.profile(kind)
	if err != nil {
		return nil, err
	}

	doc, err := p.Source.Load(ctx, id)
	if err != nil {
		return nil, err
	}

	data, err := p.Renderer.Render(p.Template, doc.View)
	if err != nil {
		return nil, &RenderError{Number: doc.Number, Err: err}
	}

	return &File{Name: p.fileName(doc.Number), ContentType: p.Format.ContentType(), Data: data}, nil
}
