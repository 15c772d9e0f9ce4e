package server

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/ccollicutt/flightcheck/pkg/analyzer"
	"github.com/ccollicutt/flightcheck/pkg/output"
	"github.com/ccollicutt/flightcheck/pkg/record"
	"github.com/ccollicutt/flightcheck/pkg/source"
	"github.com/ccollicutt/flightcheck/pkg/store"
)

// lineRequest carries one record line.
type lineRequest struct {
	Line string `json:"line"`
}

// valueRequest carries a single identifier.
type valueRequest struct {
	Value string `json:"value"`
}

// analyzeRequest is the JSON form of a batch.
type analyzeRequest struct {
	Lines []string `json:"lines"`
}

// OutcomeResponse describes the result of checking one line or identifier.
type OutcomeResponse struct {
	Valid  bool           `json:"valid"`
	Record *record.Record `json:"record,omitempty"`
	Kind   record.Kind    `json:"kind,omitempty"`
	Reason string         `json:"reason,omitempty"`
}

func newOutcomeResponse(out record.Outcome) OutcomeResponse {
	if out.Valid() {
		rec := out.Record
		return OutcomeResponse{Valid: true, Record: &rec}
	}
	return OutcomeResponse{Kind: out.Err.Kind, Reason: out.Err.Reason}
}

func (s *Server) handleHealth(c echo.Context) error {
	return c.JSON(http.StatusOK, map[string]any{
		"status":  "ok",
		"version": s.version,
	})
}

func (s *Server) handleCheck(c echo.Context) error {
	var req lineRequest
	if err := c.Bind(&req); err != nil {
		return newBadRequestError("invalid request body", err)
	}
	return c.JSON(http.StatusOK, newOutcomeResponse(s.parser.Check(req.Line)))
}

func (s *Server) handleValidateFlight(c echo.Context) error {
	return s.validateValue(c, record.ValidateFlightID)
}

func (s *Server) handleValidateComputer(c echo.Context) error {
	return s.validateValue(c, record.ValidateComputerID)
}

func (s *Server) validateValue(c echo.Context, validate func(string) error) error {
	var req valueRequest
	if err := c.Bind(&req); err != nil {
		return newBadRequestError("invalid request body", err)
	}

	resp := OutcomeResponse{Valid: true}
	if err := validate(req.Value); err != nil {
		var pe *record.ParseError
		if errors.As(err, &pe) {
			resp = OutcomeResponse{Kind: pe.Kind, Reason: pe.Reason}
		} else {
			resp = OutcomeResponse{Reason: err.Error()}
		}
	}
	return c.JSON(http.StatusOK, resp)
}

// handleAnalyze accepts a batch as plain text (one record per line) or as
// JSON {"lines": [...]}. With ?format=csv it returns the export of the valid
// records instead of the report.
func (s *Server) handleAnalyze(c echo.Context) error {
	started := time.Now()

	lines, err := readBatch(c)
	if err != nil {
		return err
	}

	name := c.QueryParam("source")
	if name == "" {
		name = "request"
	}
	a := analyzer.NewAnalyzer(analyzer.WithParser(s.parser))
	result, err := a.Analyze(c.Request().Context(), source.NewSliceSource(name, lines))
	if err != nil {
		return newInternalError("analysis failed", err)
	}

	switch c.QueryParam("format") {
	case "", "json":
		return c.JSON(http.StatusOK, output.NewReport(result, started))
	case "csv":
		var buf bytes.Buffer
		if err := output.WriteCSV(&buf, result.ValidRecords); err != nil {
			return newInternalError("writing csv", err)
		}
		return c.Blob(http.StatusOK, "text/csv; charset=utf-8", buf.Bytes())
	default:
		return newBadRequestError("format must be json or csv", nil)
	}
}

func readBatch(c echo.Context) ([]string, error) {
	req := c.Request()
	if strings.HasPrefix(req.Header.Get(echo.HeaderContentType), echo.MIMEApplicationJSON) {
		var body analyzeRequest
		if err := c.Bind(&body); err != nil {
			return nil, newBadRequestError("invalid request body", err)
		}
		return body.Lines, nil
	}

	data, err := io.ReadAll(req.Body)
	if err != nil {
		return nil, newBadRequestError("reading request body", err)
	}
	return source.SplitLines(string(data)), nil
}

func (s *Server) handleListRecords(c echo.Context) error {
	entries, err := s.store.Entries()
	if errors.Is(err, store.ErrNoEntries) {
		entries = []store.Entry{}
	} else if err != nil {
		return newInternalError("reading stored records", err)
	}
	return c.JSON(http.StatusOK, map[string]any{
		"path":    s.store.Path(),
		"entries": entries,
	})
}

// handleAppendRecord validates a line and, when valid, appends it to the
// store and remembers it as the session's last record.
func (s *Server) handleAppendRecord(c echo.Context) error {
	var req lineRequest
	if err := c.Bind(&req); err != nil {
		return newBadRequestError("invalid request body", err)
	}

	out := s.parser.Check(req.Line)
	if !out.Valid() {
		return c.JSON(http.StatusUnprocessableEntity, newOutcomeResponse(out))
	}
	if err := s.store.Append(out.Record); err != nil {
		return newInternalError("saving record", err)
	}
	s.session.Remember(out.Record)

	return c.JSON(http.StatusCreated, newOutcomeResponse(out))
}

func (s *Server) handleLastRecord(c echo.Context) error {
	rec, ok := s.session.Last()
	if !ok {
		return newNotFoundError("no record saved in this session")
	}
	return c.JSON(http.StatusOK, rec)
}
