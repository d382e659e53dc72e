package appicon

import (
	"bytes"
	"fmt"
	"image"
	"image/png"
	"os"
	"path/filepath"
	"strings"

	"biasai-icongen/internal/icon"
	"biasai-icongen/internal/logging"
)

type ExporterOptions struct {
	OutputDir string
	// Render overrides the icon renderer. Nil means icon.Render.
	Render func(pixelSize int) *image.RGBA
}

// Result describes one written icon. Width and Height come from the PNG
// header on disk, not from the in-memory image.
type Result struct {
	Spec   Spec
	Path   string
	Width  int
	Height int
	Bytes  int
}

type Exporter struct {
	outputDir string
	render    func(int) *image.RGBA
	specs     []Spec
	logger    *logging.Logger
}

func NewExporter(opts ExporterOptions, logger *logging.Logger) *Exporter {
	if logger == nil {
		panic("appicon.NewExporter: logger must not be nil")
	}
	dir := strings.TrimSpace(opts.OutputDir)
	if dir == "" {
		panic("appicon.NewExporter: output directory must not be empty")
	}
	render := opts.Render
	if render == nil {
		render = icon.Render
	}
	return &Exporter{
		outputDir: dir,
		render:    render,
		specs:     Specs(),
		logger:    logger,
	}
}

// Export writes every icon of the set in order. The first filesystem failure
// stops the run; icons written before it stay on disk and are returned along
// with the error.
func (e *Exporter) Export() ([]Result, error) {
	e.logger.Info("Generating Bias AI app icons with candlestick design...",
		logging.Field("dir", e.outputDir),
		logging.Field("count", len(e.specs)),
	)
	if err := os.MkdirAll(e.outputDir, 0o755); err != nil {
		return nil, &FilesystemError{Op: "mkdir", Path: e.outputDir, Err: err}
	}

	results := make([]Result, 0, len(e.specs))
	for _, spec := range e.specs {
		result, err := e.writeIcon(spec)
		if err != nil {
			e.logger.Error("icon export aborted",
				logging.Field("file", spec.Filename),
				logging.Field("written", len(results)),
				logging.Field("error", err),
			)
			return results, err
		}
		results = append(results, result)
		e.logger.Info(fmt.Sprintf("Created: %s (%dx%d)", result.Path, result.Width, result.Height))
		e.logger.Debug("icon written",
			logging.Field("file", spec.Filename),
			logging.Field("nominal", spec.NominalSize),
			logging.Field("scale", spec.Scale),
			logging.Field("size", logging.Bytes(result.Bytes)),
		)
	}

	e.logger.Info("All icons generated successfully!")
	e.logger.Info("The icons feature: black background, simple green candlestick, clean minimalist design")
	return results, nil
}

func (e *Exporter) writeIcon(spec Spec) (Result, error) {
	size := spec.PixelSize()
	path := filepath.Join(e.outputDir, spec.Filename)

	img := e.render(size)
	if b := img.Bounds(); b.Dx() != size || b.Dy() != size {
		e.logger.Debug("resampling rendered icon",
			logging.Field("file", spec.Filename),
			logging.Field("from", fmt.Sprintf("%dx%d", b.Dx(), b.Dy())),
			logging.Field("to", size),
		)
		img = icon.Fit(img, size)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return Result{}, &FilesystemError{Op: "encode", Path: path, Err: err}
	}
	if err := os.WriteFile(path, buf.Bytes(), 0o644); err != nil {
		return Result{}, &FilesystemError{Op: "write", Path: path, Err: err}
	}

	width, height, err := decodePNGSize(path)
	if err != nil {
		return Result{}, &FilesystemError{Op: "read", Path: path, Err: err}
	}
	return Result{
		Spec:   spec,
		Path:   path,
		Width:  width,
		Height: height,
		Bytes:  buf.Len(),
	}, nil
}

func decodePNGSize(path string) (int, int, error) {
	file, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer file.Close()
	cfg, err := png.DecodeConfig(file)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}
