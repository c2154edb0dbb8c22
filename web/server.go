// Package web serves the browser UI for interactive pagination.
//
// The server exposes a small JSON-over-HTTP API around the pageslice
// library. An upload is processed into a session holding the finished
// page images and, optionally, a PDF; later requests fetch individual
// pages, the PDF, or a zip of everything.
//
//	GET  /                    UI page
//	POST /process             multipart upload, returns session JSON
//	GET  /page/{sid}/{idx}    one page image (PNG)
//	GET  /pdf/{sid}           the assembled PDF
//	GET  /download/{sid}      zip archive of all pages
package web

import (
	"archive/zip"
	"embed"
	"encoding/json"
	"fmt"
	"image"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strconv"

	"github.com/tsawler/pageslice"
	"github.com/tsawler/pageslice/export"
	"github.com/tsawler/pageslice/layout"
	"github.com/tsawler/pageslice/observability"
)

//go:embed templates/index.html
var templates embed.FS

// maxUploadBytes bounds the multipart form size held in memory.
const maxUploadBytes = 64 << 20

// Server handles the web UI and its API.
type Server struct {
	store  *Store
	logger observability.Logger
}

// NewServer creates a server whose session data lives under baseDir.
func NewServer(baseDir string, logger observability.Logger) *Server {
	if logger == nil {
		logger = observability.NopLogger{}
	}
	return &Server{
		store:  NewStore(baseDir),
		logger: logger,
	}
}

// Store exposes the session store, mainly for cleanup on shutdown.
func (s *Server) Store() *Store { return s.store }

// Handler returns the routed HTTP handler.
func (s *Server) Handler() http.Handler {
	mux := http.NewServeMux()
	mux.HandleFunc("GET /{$}", s.handleIndex)
	mux.HandleFunc("POST /process", s.handleProcess)
	mux.HandleFunc("GET /page/{sid}/{idx}", s.handlePage)
	mux.HandleFunc("GET /pdf/{sid}", s.handlePDF)
	mux.HandleFunc("GET /download/{sid}", s.handleDownload)
	return mux
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	data, err := templates.ReadFile("templates/index.html")
	if err != nil {
		http.Error(w, "internal error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Write(data)
}

// pageInfo is the per-page entry in a process response.
type pageInfo struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// processResponse is the JSON body returned by POST /process.
type processResponse struct {
	SessionID string     `json:"session_id"`
	Pages     []pageInfo `json:"pages"`
	HasPDF    bool       `json:"has_pdf"`
}

func (s *Server) handleProcess(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxUploadBytes); err != nil {
		s.sendError(w, fmt.Errorf("expected multipart/form-data: %w", err))
		return
	}

	file, _, err := r.FormFile("file")
	if err != nil {
		s.sendError(w, fmt.Errorf("no file uploaded"))
		return
	}
	defer file.Close()

	sess, err := s.store.Create()
	if err != nil {
		s.sendError(w, err)
		return
	}

	inputPath := filepath.Join(sess.Dir, "input.png")
	if err := saveUpload(file, inputPath); err != nil {
		s.store.Remove(sess.ID)
		s.sendError(w, err)
		return
	}

	p, err := buildPaginator(inputPath, r)
	if err != nil {
		s.store.Remove(sess.ID)
		s.sendError(w, err)
		return
	}

	files, warnings, err := p.WriteFiles(filepath.Join(sess.Dir, "pages"), "page")
	if err != nil {
		s.store.Remove(sess.ID)
		s.sendError(w, err)
		return
	}
	if len(warnings) > 0 {
		s.logger.Warn("pagination warnings",
			observability.String("session", sess.ID),
			observability.String("warnings", pageslice.FormatWarnings(warnings)))
	}

	if r.FormValue("pdf") == "1" {
		pdfPath := filepath.Join(sess.Dir, "output.pdf")
		opts := export.Options{
			PageWidthCM:  parseFloat(r.FormValue("pdf_w")),
			PageHeightCM: parseFloat(r.FormValue("pdf_h")),
		}
		if err := export.WritePDF(files, pdfPath, opts); err != nil {
			s.store.Remove(sess.ID)
			s.sendError(w, err)
			return
		}
		sess.PDF = pdfPath
	}

	sess.Pages = files
	s.store.Put(sess)

	resp := processResponse{
		SessionID: sess.ID,
		HasPDF:    sess.PDF != "",
		Pages:     make([]pageInfo, 0, len(files)),
	}
	for _, f := range files {
		wpx, hpx, err := imageSize(f)
		if err != nil {
			s.sendError(w, err)
			return
		}
		resp.Pages = append(resp.Pages, pageInfo{Width: wpx, Height: hpx})
	}

	s.logger.Info("upload processed",
		observability.String("session", sess.ID),
		observability.Int("pages", len(files)))
	s.sendJSON(w, resp)
}

func (s *Server) handlePage(w http.ResponseWriter, r *http.Request) {
	sess := s.store.Get(r.PathValue("sid"))
	idx, err := strconv.Atoi(r.PathValue("idx"))
	if sess == nil || err != nil || idx < 0 || idx >= len(sess.Pages) {
		http.Error(w, "page not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "image/png")
	http.ServeFile(w, r, sess.Pages[idx])
}

func (s *Server) handlePDF(w http.ResponseWriter, r *http.Request) {
	sess := s.store.Get(r.PathValue("sid"))
	if sess == nil || sess.PDF == "" {
		http.Error(w, "pdf not found", http.StatusNotFound)
		return
	}
	if _, err := os.Stat(sess.PDF); err != nil {
		http.Error(w, "pdf not found", http.StatusNotFound)
		return
	}
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", "attachment; filename=pages.pdf")
	http.ServeFile(w, r, sess.PDF)
}

func (s *Server) handleDownload(w http.ResponseWriter, r *http.Request) {
	sess := s.store.Get(r.PathValue("sid"))
	if sess == nil {
		http.Error(w, "session not found", http.StatusNotFound)
		return
	}

	w.Header().Set("Content-Type", "application/zip")
	w.Header().Set("Content-Disposition", "attachment; filename=pages.zip")

	zw := zip.NewWriter(w)
	defer zw.Close()
	for i, path := range sess.Pages {
		entry, err := zw.Create(fmt.Sprintf("page_%03d.png", i+1))
		if err != nil {
			return
		}
		f, err := os.Open(path)
		if err != nil {
			return
		}
		_, err = io.Copy(entry, f)
		f.Close()
		if err != nil {
			return
		}
	}
}

func (s *Server) sendJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(v)
}

// sendError reports a processing failure as a JSON error body, the
// shape the UI expects.
func (s *Server) sendError(w http.ResponseWriter, err error) {
	s.logger.Error("request failed", observability.Error("error", err))
	s.sendJSON(w, map[string]string{"error": err.Error()})
}

// buildPaginator translates form fields into a configured Paginator.
func buildPaginator(inputPath string, r *http.Request) (*pageslice.Paginator, error) {
	ratioW := parseInt(r.FormValue("ratio_w"), 9)
	ratioH := parseInt(r.FormValue("ratio_h"), 16)

	dir, err := layout.ParseDirection(formValue(r, "direction", "horizontal"))
	if err != nil {
		return nil, err
	}

	p := pageslice.Open(inputPath).
		RatioWH(ratioW, ratioH).
		Tolerance(parseInt(r.FormValue("tolerance"), 5)).
		Padding(parseInt(r.FormValue("padding"), pageslice.DefaultPadding)).
		Direction(dir)

	// Margins apply only when the top margin field is present at all.
	if top := r.FormValue("m_top"); top != "" {
		p = p.Margins(
			parseInt(top, 0),
			parseInt(r.FormValue("m_right"), 0),
			parseInt(r.FormValue("m_bottom"), 0),
			parseInt(r.FormValue("m_left"), 0),
		)
	}
	return p, nil
}

func saveUpload(src io.Reader, path string) error {
	dst, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("saving upload: %w", err)
	}
	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		return fmt.Errorf("saving upload: %w", err)
	}
	return dst.Close()
}

func imageSize(path string) (int, int, error) {
	f, err := os.Open(path)
	if err != nil {
		return 0, 0, err
	}
	defer f.Close()
	cfg, _, err := image.DecodeConfig(f)
	if err != nil {
		return 0, 0, err
	}
	return cfg.Width, cfg.Height, nil
}

func formValue(r *http.Request, key, fallback string) string {
	if v := r.FormValue(key); v != "" {
		return v
	}
	return fallback
}

func parseInt(s string, fallback int) int {
	if s == "" {
		return fallback
	}
	v, err := strconv.Atoi(s)
	if err != nil {
		return fallback
	}
	return v
}

func parseFloat(s string) float64 {
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return 0
	}
	return v
}
