package fitbod

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"
	"google.golang.org/api/drive/v3"
	"google.golang.org/api/option"
)

// Source yields the raw export.
type Source interface {
	Open(ctx context.Context) (io.ReadCloser, error)
}

type FileSource struct {
	Path string
}

func (s FileSource) Open(_ context.Context) (io.ReadCloser, error) {
	f, err := os.Open(s.Path)
	if err != nil {
		return nil, fmt.Errorf("open export: %w", err)
	}
	return f, nil
}

// DriveSource downloads the newest file named fileName from a Google Drive
// folder the service account can read.
type DriveSource struct {
	service  *drive.Service
	folderID string
	fileName string
}

func NewDriveSource(ctx context.Context, folderID, fileName string, opts ...option.ClientOption) (*DriveSource, error) {
	// https://github.com/googleapis/google-api-go-client/blob/master/drive/v3/drive-gen.go
	driveService, err := drive.NewService(ctx, opts...)
	if err != nil {
		return nil, fmt.Errorf("unable to retrieve drive client: %w", err)
	}
	return &DriveSource{
		service:  driveService,
		folderID: folderID,
		fileName: fileName,
	}, nil
}

func (s *DriveSource) Open(ctx context.Context) (io.ReadCloser, error) {
	query := fmt.Sprintf(
		"'%s' in parents and name = '%s' and trashed = false",
		s.folderID, strings.ReplaceAll(s.fileName, "'", `\'`),
	)
	files, err := s.service.
		Files.List().
		Q(query).
		OrderBy("modifiedTime desc").
		Fields("files(id, name, modifiedTime)").
		Context(ctx).
		Do()
	if err != nil {
		return nil, fmt.Errorf("list drive files: %w", err)
	}
	if len(files.Files) == 0 {
		return nil, fmt.Errorf("export %q not found in folder %s", s.fileName, s.folderID)
	}
	if len(files.Files) > 1 {
		log.Warnf("fitbod: found %d exports named %s, taking the newest", len(files.Files), s.fileName)
	}

	resp, err := s.service.Files.Get(files.Files[0].Id).Context(ctx).Download()
	if err != nil {
		return nil, fmt.Errorf("download %s: %w", files.Files[0].Id, err)
	}
	return resp.Body, nil
}
