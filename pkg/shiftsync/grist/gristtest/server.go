// Package gristtest provides an in-memory Grist API server for tests.
package gristtest

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"reflect"
	"strconv"
	"strings"
	"sync"

	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/grist/ident"
	"github.com/ukaji3/shiftsync-go/pkg/shiftsync/models"
)

// APIKey is the bearer token the server accepts.
const APIKey = "test-key"

type column struct {
	ID   string
	Type models.ColumnType
}

type table struct {
	ID      string
	Columns []column
	Rows    []map[string]any
}

type doc struct {
	ID     string
	Name   string
	Tables []*table
}

type workspace struct {
	ID   int
	Name string
	Docs []*doc
}

// Server is a fake Grist server. It serves a single organization.
type Server struct {
	*httptest.Server

	Org string

	mu         sync.Mutex
	workspaces []*workspace
	docs       map[string]*doc
	nextDoc    int
	requests   []string
}

// NewServer starts a fake server for org. Call Close when done.
func NewServer(org string) *Server {
	s := &Server{
		Org:  org,
		docs: make(map[string]*doc),
	}

	mux := http.NewServeMux()
	mux.HandleFunc("GET /api/orgs/{org}/workspaces", s.listWorkspaces)
	mux.HandleFunc("GET /api/workspaces/{ws}", s.getWorkspace)
	mux.HandleFunc("POST /api/workspaces/{ws}/docs", s.createDoc)
	mux.HandleFunc("GET /api/docs/{doc}/tables", s.listTables)
	mux.HandleFunc("POST /api/docs/{doc}/tables", s.createTables)
	mux.HandleFunc("GET /api/docs/{doc}/tables/{table}/columns", s.listColumns)
	mux.HandleFunc("POST /api/docs/{doc}/tables/{table}/columns", s.addColumns)
	mux.HandleFunc("POST /api/docs/{doc}/tables/{table}/records", s.addRecords)
	mux.HandleFunc("PUT /api/docs/{doc}/tables/{table}/records", s.upsertRecords)

	s.Server = httptest.NewServer(s.authorize(mux))
	return s
}

// AddWorkspace registers a workspace and returns its id.
func (s *Server) AddWorkspace(name string) int {
	s.mu.Lock()
	defer s.mu.Unlock()

	ws := &workspace{ID: len(s.workspaces) + 1, Name: name}
	s.workspaces = append(s.workspaces, ws)
	return ws.ID
}

// AddDoc registers a document in a workspace and returns its id.
func (s *Server) AddDoc(workspaceID int, name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return s.addDocLocked(s.findWorkspace(workspaceID), name).ID
}

// AddTable registers a table with columns.
func (s *Server) AddTable(docID, tableID string, cols ...models.Column) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.docs[docID]
	t := &table{ID: tableID}
	for _, c := range cols {
		t.Columns = append(t.Columns, column{ID: c.ID, Type: c.TypeOrDefault()})
	}
	d.Tables = append(d.Tables, t)
}

// Columns returns the columns of a table in creation order.
func (s *Server) Columns(docID, tableID string) []models.Column {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findTable(docID, tableID)
	if t == nil {
		return nil
	}
	cols := make([]models.Column, 0, len(t.Columns))
	for _, c := range t.Columns {
		cols = append(cols, models.Column{ID: c.ID, Type: c.Type})
	}
	return cols
}

// Rows returns the stored rows of a table.
func (s *Server) Rows(docID, tableID string) []map[string]any {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.findTable(docID, tableID)
	if t == nil {
		return nil
	}
	return append([]map[string]any(nil), t.Rows...)
}

// Docs returns the names of the documents in a workspace.
func (s *Server) Docs(workspaceID int) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var names []string
	if ws := s.findWorkspace(workspaceID); ws != nil {
		for _, d := range ws.Docs {
			names = append(names, d.Name)
		}
	}
	return names
}

// DocID returns the id of the named document in a workspace, or "".
func (s *Server) DocID(workspaceID int, name string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ws := s.findWorkspace(workspaceID); ws != nil {
		for _, d := range ws.Docs {
			if d.Name == name {
				return d.ID
			}
		}
	}
	return ""
}

// Requests returns "METHOD /path" for every request received.
func (s *Server) Requests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	return append([]string(nil), s.requests...)
}

// Writes returns the non-GET requests received.
func (s *Server) Writes() []string {
	var writes []string
	for _, r := range s.Requests() {
		if !strings.HasPrefix(r, "GET ") {
			writes = append(writes, r)
		}
	}
	return writes
}

func (s *Server) authorize(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		s.mu.Lock()
		s.requests = append(s.requests, r.Method+" "+r.URL.Path)
		s.mu.Unlock()

		if r.Header.Get("Authorization") != "Bearer "+APIKey {
			writeError(w, http.StatusUnauthorized, "invalid API key")
			return
		}
		next.ServeHTTP(w, r)
	})
}

func (s *Server) findWorkspace(id int) *workspace {
	for _, ws := range s.workspaces {
		if ws.ID == id {
			return ws
		}
	}
	return nil
}

func (s *Server) findTable(docID, tableID string) *table {
	d := s.docs[docID]
	if d == nil {
		return nil
	}
	for _, t := range d.Tables {
		if t.ID == tableID {
			return t
		}
	}
	return nil
}

func (s *Server) addDocLocked(ws *workspace, name string) *doc {
	s.nextDoc++
	d := &doc{ID: fmt.Sprintf("doc%d", s.nextDoc), Name: name}
	s.docs[d.ID] = d
	ws.Docs = append(ws.Docs, d)
	return d
}

func workspaceJSON(ws *workspace) map[string]any {
	docs := []map[string]any{}
	for _, d := range ws.Docs {
		docs = append(docs, map[string]any{"id": d.ID, "name": d.Name})
	}
	return map[string]any{"id": ws.ID, "name": ws.Name, "docs": docs}
}

func (s *Server) listWorkspaces(w http.ResponseWriter, r *http.Request) {
	if r.PathValue("org") != s.Org {
		writeError(w, http.StatusNotFound, "organization not found")
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	out := []map[string]any{}
	for _, ws := range s.workspaces {
		out = append(out, workspaceJSON(ws))
	}
	writeJSON(w, out)
}

func (s *Server) workspaceFrom(w http.ResponseWriter, r *http.Request) *workspace {
	id, err := strconv.Atoi(r.PathValue("ws"))
	if err != nil {
		writeError(w, http.StatusBadRequest, "invalid workspace id")
		return nil
	}
	ws := s.findWorkspace(id)
	if ws == nil {
		writeError(w, http.StatusNotFound, "workspace not found")
	}
	return ws
}

func (s *Server) getWorkspace(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if ws := s.workspaceFrom(w, r); ws != nil {
		writeJSON(w, workspaceJSON(ws))
	}
}

func (s *Server) createDoc(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Name string `json:"name"`
	}
	if !readJSON(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if ws := s.workspaceFrom(w, r); ws != nil {
		writeJSON(w, s.addDocLocked(ws, body.Name).ID)
	}
}

type columnSpec struct {
	ID     string `json:"id"`
	Fields struct {
		Type models.ColumnType `json:"type"`
	} `json:"fields"`
}

func (s *Server) listTables(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.docs[r.PathValue("doc")]
	if d == nil {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	tables := []map[string]any{}
	for _, t := range d.Tables {
		tables = append(tables, map[string]any{"id": t.ID, "fields": map[string]any{}})
	}
	writeJSON(w, map[string]any{"tables": tables})
}

// createTables converts table and column ids to identifiers like Grist does.
func (s *Server) createTables(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Tables []struct {
			ID      string       `json:"id"`
			Columns []columnSpec `json:"columns"`
		} `json:"tables"`
	}
	if !readJSON(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	d := s.docs[r.PathValue("doc")]
	if d == nil {
		writeError(w, http.StatusNotFound, "document not found")
		return
	}

	created := []map[string]any{}
	for _, spec := range body.Tables {
		id := ident.Table(spec.ID)
		t := &table{ID: id}
		for _, c := range spec.Columns {
			t.Columns = append(t.Columns, column{ID: ident.Column(c.ID), Type: c.Fields.Type})
		}
		d.Tables = append(d.Tables, t)
		created = append(created, map[string]any{"id": id})
	}
	writeJSON(w, map[string]any{"tables": created})
}

func (s *Server) tableFrom(w http.ResponseWriter, r *http.Request) *table {
	t := s.findTable(r.PathValue("doc"), r.PathValue("table"))
	if t == nil {
		writeError(w, http.StatusNotFound, "table not found")
	}
	return t
}

func (s *Server) listColumns(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tableFrom(w, r)
	if t == nil {
		return
	}

	cols := []map[string]any{}
	for _, c := range t.Columns {
		cols = append(cols, map[string]any{"id": c.ID, "fields": map[string]any{"type": c.Type}})
	}
	writeJSON(w, map[string]any{"columns": cols})
}

func (s *Server) addColumns(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Columns []columnSpec `json:"columns"`
	}
	if !readJSON(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tableFrom(w, r)
	if t == nil {
		return
	}

	added := []map[string]any{}
	for _, c := range body.Columns {
		id := ident.Column(c.ID)
		for _, existing := range t.Columns {
			if existing.ID == id {
				writeError(w, http.StatusBadRequest, "column already exists: "+id)
				return
			}
		}
		t.Columns = append(t.Columns, column{ID: id, Type: c.Fields.Type})
		added = append(added, map[string]any{"id": id})
	}
	writeJSON(w, map[string]any{"columns": added})
}

func (t *table) checkFields(fields map[string]any) error {
	for k := range fields {
		found := false
		for _, c := range t.Columns {
			if c.ID == k {
				found = true
				break
			}
		}
		if !found {
			return fmt.Errorf("invalid column %q", k)
		}
	}
	return nil
}

func (s *Server) addRecords(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Records []struct {
			Fields map[string]any `json:"fields"`
		} `json:"records"`
	}
	if !readJSON(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tableFrom(w, r)
	if t == nil {
		return
	}

	ids := []map[string]any{}
	for _, rec := range body.Records {
		if err := t.checkFields(rec.Fields); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	for _, rec := range body.Records {
		t.Rows = append(t.Rows, rec.Fields)
		ids = append(ids, map[string]any{"id": len(t.Rows)})
	}
	writeJSON(w, map[string]any{"records": ids})
}

func (s *Server) upsertRecords(w http.ResponseWriter, r *http.Request) {
	var body struct {
		Records []struct {
			Require map[string]any `json:"require"`
			Fields  map[string]any `json:"fields"`
		} `json:"records"`
	}
	if !readJSON(w, r, &body) {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	t := s.tableFrom(w, r)
	if t == nil {
		return
	}

	for _, rec := range body.Records {
		if err := t.checkFields(rec.Require); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
		if err := t.checkFields(rec.Fields); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}

	for _, rec := range body.Records {
		matched := false
		for _, row := range t.Rows {
			if matches(row, rec.Require) {
				for k, v := range rec.Fields {
					row[k] = v
				}
				matched = true
			}
		}
		if !matched {
			row := make(map[string]any)
			for k, v := range rec.Require {
				row[k] = v
			}
			for k, v := range rec.Fields {
				row[k] = v
			}
			t.Rows = append(t.Rows, row)
		}
	}
	w.WriteHeader(http.StatusOK)
}

func matches(row, require map[string]any) bool {
	for k, v := range require {
		if !reflect.DeepEqual(row[k], v) {
			return false
		}
	}
	return true
}

func readJSON(w http.ResponseWriter, r *http.Request, v any) bool {
	if err := json.NewDecoder(r.Body).Decode(v); err != nil {
		writeError(w, http.StatusBadRequest, "invalid JSON: "+err.Error())
		return false
	}
	return true
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
