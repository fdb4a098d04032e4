package writer

import (
	"fmt"
	"io"
	"os"
	"time"

	"github.com/achilleasa/scenedesc/log"
	"github.com/achilleasa/scenedesc/scene"
	"github.com/achilleasa/scenedesc/scene/reader"
	"github.com/tidwall/pretty"
	"github.com/tidwall/sjson"
	"gopkg.in/yaml.v3"
)

// The Writer interface is implemented by all scene writers.
type Writer interface {
	// Write scene definition
	Write(*scene.Scene) error
}

type streamSceneWriter struct {
	logger log.Logger
	out    io.Writer
	format reader.Format
}

// Create a writer that emits scenes to out in the given format.
func NewWriter(out io.Writer, format reader.Format) Writer {
	return &streamSceneWriter{
		logger: log.New("scene writer"),
		out:    out,
		format: format,
	}
}

func (w *streamSceneWriter) Write(sc *scene.Scene) error {
	start := time.Now()

	data, err := Encode(sc, w.format)
	if err != nil {
		return err
	}
	if _, err = w.out.Write(data); err != nil {
		return err
	}

	w.logger.Infof("encoded %s scene in %d ms", w.format, time.Since(start).Nanoseconds()/1e6)
	return nil
}

// Encode a scene in the given format.
func Encode(sc *scene.Scene, format reader.Format) ([]byte, error) {
	if format == reader.YAML {
		return WriteYAML(sc)
	}
	return WriteJSON(sc)
}

// Write scene to a file. The format is selected based on the file extension.
func WriteScene(sc *scene.Scene, filename string) error {
	format, err := reader.FormatFromPath(filename)
	if err != nil {
		return err
	}

	f, err := os.Create(filename)
	if err != nil {
		return err
	}
	defer f.Close()

	log.New("scene writer").Noticef("writing %s scene to %s", format, filename)
	if err = NewWriter(f, format).Write(sc); err != nil {
		return err
	}
	return f.Close()
}

// Encode a single entity as a document with one top-level key, the entity name.
func EncodeEntity(entity scene.Entity, format reader.Format) ([]byte, error) {
	if format == reader.YAML {
		value := &yaml.Node{}
		if err := value.Encode(entityToDoc(entity)); err != nil {
			return nil, fmt.Errorf("writer: could not encode %s.%s: %w", entity.Collection(), entity.EntityName(), err)
		}
		return yaml.Marshal(&yaml.Node{
			Kind:    yaml.MappingNode,
			Content: []*yaml.Node{keyNode(entity.EntityName()), value},
		})
	}

	doc, err := sjson.Set("{}", escapePath(entity.EntityName()), entityToDoc(entity))
	if err != nil {
		return nil, fmt.Errorf("writer: could not encode %s.%s: %w", entity.Collection(), entity.EntityName(), err)
	}
	return pretty.PrettyOptions([]byte(doc), prettyOptions), nil
}
