package food

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/mholt/archives"
	"github.com/rmohr/allergens/pkg/api"
	"github.com/rmohr/allergens/pkg/api/allergens"
	"github.com/sirupsen/logrus"
	"sigs.k8s.io/yaml"
)

// Stdin is the path which makes LoadFile read from standard input.
const Stdin = "-"

// Load reads the line based food list. Lines which are not food records are skipped.
func Load(r io.Reader) (api.Foods, error) {
	var tokens []Tokens
	scanner := bufio.NewScanner(r)
	n := 0
	for scanner.Scan() {
		n++
		line := scanner.Text()
		t, ok := ParseLine(line)
		if !ok {
			if strings.TrimSpace(line) != "" {
				logrus.Debugf("skipping line %d: %q", n, line)
			}
			continue
		}
		tokens = append(tokens, t)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("failed to read foods: %v", err)
	}
	return NewFoods(tokens), nil
}

// LoadRecords decodes a YAML or JSON document of structured food records.
func LoadRecords(data []byte) (api.Foods, error) {
	records := &allergens.Records{}
	if err := yaml.Unmarshal(data, records); err != nil {
		return nil, fmt.Errorf("failed to decode food records: %v", err)
	}
	var tokens []Tokens
	for _, record := range records.Foods {
		tokens = append(tokens, Tokens{
			Ingredients: nonEmpty(record.Ingredients),
			Allergens:   nonEmpty(record.Allergens),
		})
	}
	return NewFoods(tokens), nil
}

// LoadFile loads foods from path. Compressed files are decompressed on the fly,
// files ending in .yaml, .yml or .json are decoded as structured records.
func LoadFile(ctx context.Context, path string) (api.Foods, error) {
	var in io.Reader
	name := path
	if path == Stdin || path == "" {
		in = os.Stdin
		name = ""
	} else {
		f, err := os.Open(path)
		if err != nil {
			return nil, err
		}
		defer f.Close()
		in = f
	}

	reader, err := decompress(ctx, name, in)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %v", path, err)
	}
	defer reader.Close()

	if isStructured(name) {
		data, err := io.ReadAll(reader)
		if err != nil {
			return nil, fmt.Errorf("failed to read %s: %v", path, err)
		}
		return LoadRecords(data)
	}
	return Load(reader)
}

func decompress(ctx context.Context, name string, in io.Reader) (io.ReadCloser, error) {
	format, stream, err := archives.Identify(ctx, name, in)
	if errors.Is(err, archives.NoMatch) {
		return io.NopCloser(stream), nil
	} else if err != nil {
		return nil, err
	}
	if _, ok := format.(archives.Extractor); ok {
		return nil, fmt.Errorf("archive format %s is not supported, only single compressed files", format.Extension())
	}
	decompressor, ok := format.(archives.Decompressor)
	if !ok {
		return io.NopCloser(stream), nil
	}
	logrus.Debugf("decompressing %s as %s", name, format.Extension())
	return decompressor.OpenReader(stream)
}

func isStructured(name string) bool {
	ext := filepath.Ext(name)
	if structuredExt(ext) {
		return true
	}
	// input.yaml.gz
	return ext != "" && structuredExt(filepath.Ext(strings.TrimSuffix(name, ext)))
}

func structuredExt(ext string) bool {
	switch strings.ToLower(ext) {
	case ".yaml", ".yml", ".json":
		return true
	}
	return false
}

func nonEmpty(tokens []string) (r []string) {
	for _, t := range tokens {
		if strings.TrimSpace(t) != "" {
			r = append(r, t)
		}
	}
	return r
}
