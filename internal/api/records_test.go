package api

import (
	"fmt"
	"net/http"
	"testing"

	"beneficiary_registry/internal/domain"

	"github.com/stretchr/testify/require"
)

// sampleRecord returns a well-formed record payload
func sampleRecord(name, date, department string) map[string]any {
	return map[string]any{
		"day":              "الأحد",
		"date":             date,
		"beneficiary_name": name,
		"id_number":        "1098765432",
		"phone_number":     "0550000000",
		"case_number":      "447700123",
		"department":       department,
		"capacity":         "محامي",
		"description":      "طلب الاطلاع على ملف القضية",
		"employee":         "علي الغامدي",
	}
}

func TestCreateRecordRequiresBusinessFields(t *testing.T) {
	env := newTestEnv(t, "records_required")

	for _, missing := range []string{"beneficiary_name", "id_number", "case_number", "department"} {
		payload := sampleRecord("زائر", "2024-05-01", "الدائرة الأولى")
		delete(payload, missing)
		w := env.do(t, http.MethodPost, "/api/records", payload)
		require.Equal(t, http.StatusBadRequest, w.Code, "missing %s", missing)
	}

	// Optional fields may be absent
	payload := sampleRecord("زائر", "2024-05-01", "الدائرة الأولى")
	delete(payload, "phone_number")
	delete(payload, "capacity")
	delete(payload, "description")
	delete(payload, "employee")
	w := env.do(t, http.MethodPost, "/api/records", payload)
	require.Equal(t, http.StatusOK, w.Code)
}

func TestCreateRecordSetsCreatedAt(t *testing.T) {
	env := newTestEnv(t, "records_createdat")

	env.postRecord(t, sampleRecord("زائر", "2024-05-01", "الدائرة الأولى"))

	var rec domain.Record
	require.NoError(t, env.DB.First(&rec).Error)
	require.NotEmpty(t, rec.CreatedAt) // Server-set, never client-supplied
}

func TestListRecordsNewestFirst(t *testing.T) {
	env := newTestEnv(t, "records_order")

	env.postRecord(t, sampleRecord("الأول", "2024-05-01", "الدائرة الأولى"))
	env.postRecord(t, sampleRecord("الثاني", "2024-05-03", "الدائرة الأولى"))
	env.postRecord(t, sampleRecord("الثالث", "2024-05-02", "الدائرة الأولى"))

	w := env.do(t, http.MethodGet, "/api/records", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decode(t, w)["records"].([]any)
	require.Len(t, rows, 3)
	// Ordered by date descending
	require.Equal(t, "الثاني", rows[0].(map[string]any)["beneficiary_name"])
	require.Equal(t, "الثالث", rows[1].(map[string]any)["beneficiary_name"])
	require.Equal(t, "الأول", rows[2].(map[string]any)["beneficiary_name"])
}

func TestListRecordsFilters(t *testing.T) {
	env := newTestEnv(t, "records_filters")

	env.postRecord(t, sampleRecord("أ", "2024-05-01", "الدائرة الأولى"))
	env.postRecord(t, sampleRecord("ب", "2024-05-10", "الدائرة الثانية"))
	env.postRecord(t, sampleRecord("ج", "2024-05-20", "الدائرة الأولى"))

	// Department equality filter
	w := env.do(t, http.MethodGet, "/api/records?department="+escape("الدائرة الثانية"), nil)
	rows := decode(t, w)["records"].([]any)
	require.Len(t, rows, 1)
	require.Equal(t, "ب", rows[0].(map[string]any)["beneficiary_name"])

	// Inclusive date range
	w = env.do(t, http.MethodGet, "/api/records?from=2024-05-01&to=2024-05-10", nil)
	rows = decode(t, w)["records"].([]any)
	require.Len(t, rows, 2)

	// startDate/endDate spelling is accepted too
	w = env.do(t, http.MethodGet, "/api/records?startDate=2024-05-10&endDate=2024-05-20", nil)
	rows = decode(t, w)["records"].([]any)
	require.Len(t, rows, 2)

	// Combined filters are ANDed
	w = env.do(t, http.MethodGet, "/api/records?from=2024-05-01&to=2024-05-10&department="+escape("الدائرة الأولى"), nil)
	rows = decode(t, w)["records"].([]any)
	require.Len(t, rows, 1)
	require.Equal(t, "أ", rows[0].(map[string]any)["beneficiary_name"])
}

func TestBeneficiariesAlias(t *testing.T) {
	env := newTestEnv(t, "records_alias")

	w := env.do(t, http.MethodPost, "/api/beneficiaries", sampleRecord("زائر", "2024-05-01", "الدائرة الأولى"))
	require.Equal(t, http.StatusOK, w.Code)

	// The alias responds under its historical payload key
	w = env.do(t, http.MethodGet, "/api/beneficiaries", nil)
	require.Equal(t, http.StatusOK, w.Code)
	rows := decode(t, w)["beneficiaries"].([]any)
	require.Len(t, rows, 1)
}

func TestBulkInsertWellFormed(t *testing.T) {
	env := newTestEnv(t, "records_bulk")

	batch := []map[string]any{
		sampleRecord("أ", "2024-05-01", "الدائرة الأولى"),
		sampleRecord("ب", "2024-05-02", "الدائرة الأولى"),
		sampleRecord("ج", "2024-05-03", "الدائرة الثانية"),
	}
	w := env.do(t, http.MethodPost, "/api/records/bulk", batch)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 3, decode(t, w)["count"])

	var n int64
	require.NoError(t, env.DB.Model(&domain.Record{}).Count(&n).Error)
	require.EqualValues(t, 3, n)
}

func TestBulkInsertSkipsMalformedRows(t *testing.T) {
	env := newTestEnv(t, "records_bulk_partial")

	malformed := sampleRecord("بدون قضية", "2024-05-02", "الدائرة الأولى")
	delete(malformed, "case_number")
	batch := []map[string]any{
		sampleRecord("أ", "2024-05-01", "الدائرة الأولى"),
		malformed,
		sampleRecord("ج", "2024-05-03", "الدائرة الثانية"),
	}
	w := env.do(t, http.MethodPost, "/api/records/bulk", batch)
	require.Equal(t, http.StatusOK, w.Code)
	body := decode(t, w)
	require.EqualValues(t, 2, body["count"])
	require.EqualValues(t, 1, body["skipped"])

	// Only the valid rows were written
	var n int64
	require.NoError(t, env.DB.Model(&domain.Record{}).Count(&n).Error)
	require.EqualValues(t, 2, n)
}

func TestBulkInsertRejectsEmptyBody(t *testing.T) {
	env := newTestEnv(t, "records_bulk_empty")

	w := env.do(t, http.MethodPost, "/api/records/bulk", []map[string]any{})
	require.Equal(t, http.StatusBadRequest, w.Code)
}

func TestDeleteRecordIdempotent(t *testing.T) {
	env := newTestEnv(t, "records_delete")

	env.postRecord(t, sampleRecord("زائر", "2024-05-01", "الدائرة الأولى"))
	var rec domain.Record
	require.NoError(t, env.DB.First(&rec).Error)

	w := env.do(t, http.MethodDelete, fmt.Sprintf("/api/records/%d", rec.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 1, decode(t, w)["changes"])

	// Deleting again reports zero changes, still a success
	w = env.do(t, http.MethodDelete, fmt.Sprintf("/api/records/%d", rec.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)
	require.EqualValues(t, 0, decode(t, w)["changes"])
}

func TestDeleteRecordMalformedID(t *testing.T) {
	env := newTestEnv(t, "records_badid")

	env.postRecord(t, sampleRecord("أ", "2024-05-01", "الدائرة الأولى"))
	env.postRecord(t, sampleRecord("ب", "2024-05-02", "الدائرة الأولى"))
	env.postRecord(t, sampleRecord("ج", "2024-05-03", "الدائرة الثانية"))

	// The id segment is bound as a parameter, never spliced into the
	// statement, so a crafted id matches nothing and deletes nothing.
	for _, id := range []string{"abc", "1=1", "1%20OR%201%3D1", "id"} {
		w := env.do(t, http.MethodDelete, "/api/records/"+id, nil)
		require.Equal(t, http.StatusOK, w.Code, id)
		require.EqualValues(t, 0, decode(t, w)["changes"], id)
	}

	var n int64
	require.NoError(t, env.DB.Model(&domain.Record{}).Count(&n).Error)
	require.EqualValues(t, 3, n) // Every record survived
}
