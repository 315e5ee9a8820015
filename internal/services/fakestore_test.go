package services

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sort"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/venturebridge/backend/internal/store"
	"github.com/venturebridge/backend/pkg/logger"
)

func init() {
	logger.InitLogger()
}

// fakeStore is an in-memory stand-in for the external record store, speaking
// just enough of the JSON collection protocol for the service tests: list
// with equality filters, get by id, create with id assignment, PUT, PATCH
// merge and delete.
type fakeStore struct {
	mu          sync.Mutex
	collections map[string]map[int64]map[string]interface{}
	nextID      int64
	failWrites  bool
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		collections: map[string]map[int64]map[string]interface{}{
			"users":                 {},
			"investors":             {},
			"entrepreneurs":         {},
			"collaborationRequests": {},
		},
		nextID: 1,
	}
}

// put inserts a record from any JSON-marshalable value, keeping its id.
func (f *fakeStore) put(t *testing.T, collection string, id int64, record interface{}) {
	t.Helper()
	data, err := json.Marshal(record)
	if err != nil {
		t.Fatalf("failed to marshal seed record: %v", err)
	}
	var m map[string]interface{}
	if err := json.Unmarshal(data, &m); err != nil {
		t.Fatalf("failed to unmarshal seed record: %v", err)
	}
	m["id"] = id
	f.mu.Lock()
	defer f.mu.Unlock()
	f.collections[collection][id] = m
	if id >= f.nextID {
		f.nextID = id + 1
	}
}

// get decodes the stored record into out.
func (f *fakeStore) get(t *testing.T, collection string, id int64, out interface{}) {
	t.Helper()
	f.mu.Lock()
	record, ok := f.collections[collection][id]
	f.mu.Unlock()
	if !ok {
		t.Fatalf("record %d not found in %s", id, collection)
	}
	data, _ := json.Marshal(record)
	if err := json.Unmarshal(data, out); err != nil {
		t.Fatalf("failed to decode stored record: %v", err)
	}
}

func (f *fakeStore) server(t *testing.T) *httptest.Server {
	t.Helper()
	srv := httptest.NewServer(http.HandlerFunc(f.handle))
	t.Cleanup(srv.Close)
	return srv
}

func (f *fakeStore) client(t *testing.T) *store.Client {
	t.Helper()
	return store.NewClient(f.server(t).URL, 0)
}

func (f *fakeStore) handle(w http.ResponseWriter, r *http.Request) {
	f.mu.Lock()
	defer f.mu.Unlock()

	parts := strings.Split(strings.Trim(r.URL.Path, "/"), "/")
	records, ok := f.collections[parts[0]]
	if !ok {
		http.NotFound(w, r)
		return
	}

	if f.failWrites && r.Method != http.MethodGet {
		http.Error(w, "write rejected", http.StatusInternalServerError)
		return
	}

	switch {
	case len(parts) == 1 && r.Method == http.MethodGet:
		f.list(w, r, records)
	case len(parts) == 1 && r.Method == http.MethodPost:
		var m map[string]interface{}
		if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
			http.Error(w, err.Error(), http.StatusBadRequest)
			return
		}
		id := f.nextID
		if raw, ok := m["id"].(float64); ok && raw != 0 {
			id = int64(raw)
		}
		if id >= f.nextID {
			f.nextID = id + 1
		}
		m["id"] = id
		records[id] = m
		w.WriteHeader(http.StatusCreated)
		json.NewEncoder(w).Encode(m)
	case len(parts) == 2:
		id, err := strconv.ParseInt(parts[1], 10, 64)
		if err != nil {
			http.Error(w, "bad id", http.StatusBadRequest)
			return
		}
		record, ok := records[id]
		if !ok {
			http.NotFound(w, r)
			return
		}
		switch r.Method {
		case http.MethodGet:
			json.NewEncoder(w).Encode(record)
		case http.MethodPut:
			var m map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&m); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			m["id"] = id
			records[id] = m
			json.NewEncoder(w).Encode(m)
		case http.MethodPatch:
			var patch map[string]interface{}
			if err := json.NewDecoder(r.Body).Decode(&patch); err != nil {
				http.Error(w, err.Error(), http.StatusBadRequest)
				return
			}
			for key, value := range patch {
				record[key] = value
			}
			json.NewEncoder(w).Encode(record)
		case http.MethodDelete:
			delete(records, id)
			json.NewEncoder(w).Encode(map[string]interface{}{})
		default:
			http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		}
	default:
		http.NotFound(w, r)
	}
}

func (f *fakeStore) list(w http.ResponseWriter, r *http.Request, records map[int64]map[string]interface{}) {
	ids := make([]int64, 0, len(records))
	for id := range records {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	result := make([]map[string]interface{}, 0, len(records))
	for _, id := range ids {
		record := records[id]
		match := true
		for key, values := range r.URL.Query() {
			if fmt.Sprint(record[key]) != values[0] {
				match = false
				break
			}
		}
		if match {
			result = append(result, record)
		}
	}
	json.NewEncoder(w).Encode(result)
}
