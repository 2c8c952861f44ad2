package cli

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeAPI answers GraphQL operations by name.
type fakeAPI struct {
	t *testing.T

	// respond maps an operation name substring to a queue of raw responses.
	respond map[string][]string

	calls    int
	lastVars map[string]any
}

func (f *fakeAPI) handler() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var call struct {
			Query     string         `json:"query"`
			Variables map[string]any `json:"variables"`
		}
		require.NoError(f.t, json.NewDecoder(r.Body).Decode(&call))
		f.calls++
		f.lastVars = call.Variables

		for op, queue := range f.respond {
			if strings.Contains(call.Query, op) && len(queue) > 0 {
				resp := queue[0]
				f.respond[op] = queue[1:]
				_, _ = w.Write([]byte(resp))
				return
			}
		}
		http.Error(w, `{"errors":[{"message":"no scripted response"}]}`, http.StatusOK)
	}
}

func runCommand(t *testing.T, fake *fakeAPI, args ...string) (string, error) {
	t.Helper()

	server := httptest.NewServer(fake.handler())
	t.Cleanup(server.Close)

	// the global viper carries config file state across commands
	t.Cleanup(viper.Reset)

	t.Setenv("AEC_GRAPHQL_ENDPOINT", server.URL)
	t.Setenv("APS_ACCESS_TOKEN", "test-token")
	t.Setenv("APS_CLIENT_ID", "")
	t.Setenv("APS_CLIENT_SECRET", "")

	root := NewRootCmd("test")
	var buf bytes.Buffer
	root.SetOut(&buf)
	root.SetErr(&buf)
	root.SetArgs(args)

	err := root.Execute()
	return buf.String(), err
}

func countsResponse(pairs map[string]int) string {
	values := make([]map[string]any, 0, len(pairs))
	for value, count := range pairs {
		values = append(values, map[string]any{"value": value, "count": count})
	}
	body, _ := json.Marshal(map[string]any{
		"data": map[string]any{
			"distinctPropertyValuesInElementGroupByName": map[string]any{
				"results": []any{map[string]any{"values": values}},
			},
		},
	})
	return string(body)
}

func elementsResponse(category string, names ...string) string {
	results := make([]map[string]any, 0, len(names))
	for _, name := range names {
		results = append(results, map[string]any{
			"id":   "id-" + name,
			"name": name,
			"properties": map[string]any{
				"results": []any{
					map[string]any{"name": "Family Name", "value": category + " Family"},
					map[string]any{"name": "Type Name", "value": "Generic"},
				},
			},
		})
	}
	body, _ := json.Marshal(map[string]any{
		"data": map[string]any{
			"elementsByElementGroup": map[string]any{
				"pagination": map[string]any{},
				"results":    results,
			},
		},
	})
	return string(body)
}

func externalIDsResponse(ids ...string) string {
	results := make([]map[string]any, 0, len(ids))
	for _, id := range ids {
		results = append(results, map[string]any{
			"id":   "el-" + id,
			"name": "Element " + id,
			"alternativeIdentifiers": map[string]any{
				"externalElementId": id,
			},
		})
	}
	body, _ := json.Marshal(map[string]any{
		"data": map[string]any{
			"elementsByElementGroup": map[string]any{
				"pagination": map[string]any{},
				"results":    results,
			},
		},
	})
	return string(body)
}

func TestCategoriesCommandJSON(t *testing.T) {
	fake := &fakeAPI{t: t, respond: map[string][]string{
		"UsedCategories": {countsResponse(map[string]int{"Walls": 248, "Doors": 67})},
	}}

	out, err := runCommand(t, fake, "categories", "-g", "grp-1", "-o", "json")

	require.NoError(t, err)
	var counts map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &counts))
	assert.Equal(t, map[string]int{"Walls": 248, "Doors": 67}, counts)
}

func TestCategoriesCommandTable(t *testing.T) {
	fake := &fakeAPI{t: t, respond: map[string][]string{
		"UsedCategories": {countsResponse(map[string]int{"Walls": 248})},
	}}

	out, err := runCommand(t, fake, "categories", "-g", "grp-1", "-o", "table")

	require.NoError(t, err)
	assert.Contains(t, out, "Walls")
	assert.Contains(t, out, "248")
}

func TestCategoriesCommandRequiresElementGroup(t *testing.T) {
	_, err := runCommand(t, &fakeAPI{t: t}, "categories", "-o", "json")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "element group ID required")
}

func TestCategoriesCommandRejectsBadFormat(t *testing.T) {
	_, err := runCommand(t, &fakeAPI{t: t}, "categories", "-g", "grp-1", "-o", "xml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "invalid format")
}

func TestCategoriesCommandConfigFile(t *testing.T) {
	fake := &fakeAPI{t: t, respond: map[string][]string{
		"UsedCategories": {countsResponse(map[string]int{"Walls": 248})},
	}}

	cfgPath := filepath.Join(t.TempDir(), "auditctl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("element-group: grp-from-file\n"), 0o644))

	out, err := runCommand(t, fake, "categories", "-o", "json", "--config", cfgPath)

	require.NoError(t, err)
	var counts map[string]int
	require.NoError(t, json.Unmarshal([]byte(out), &counts))
	assert.Equal(t, 248, counts["Walls"])
	assert.Equal(t, "grp-from-file", fake.lastVars["elementGroupId"])
}

func TestCategoriesCommandFlagBeatsConfigFile(t *testing.T) {
	fake := &fakeAPI{t: t, respond: map[string][]string{
		"UsedCategories": {countsResponse(map[string]int{"Walls": 248})},
	}}

	cfgPath := filepath.Join(t.TempDir(), "auditctl.yaml")
	require.NoError(t, os.WriteFile(cfgPath, []byte("element-group: grp-from-file\n"), 0o644))

	_, err := runCommand(t, fake, "categories", "-g", "grp-flag", "-o", "json", "--config", cfgPath)

	require.NoError(t, err)
	assert.Equal(t, "grp-flag", fake.lastVars["elementGroupId"])
}

func TestInstancesCommandJSON(t *testing.T) {
	fake := &fakeAPI{t: t, respond: map[string][]string{
		"FamilyInstances": {elementsResponse("Walls", "Wall 1", "Wall 2")},
	}}

	out, err := runCommand(t, fake, "instances", "-g", "grp-1", "-o", "json",
		"--category", "Walls")

	require.NoError(t, err)
	var records []struct {
		Category    string `json:"category"`
		FamilyName  string `json:"family_name"`
		ElementName string `json:"element_name"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &records))
	require.Len(t, records, 2)
	assert.Equal(t, "Walls", records[0].Category)
	assert.Equal(t, "Walls Family", records[0].FamilyName)
	assert.Equal(t, "Wall 1", records[0].ElementName)
}

func TestInstancesCommandEmpty(t *testing.T) {
	fake := &fakeAPI{t: t, respond: map[string][]string{
		"FamilyInstances": {elementsResponse("Walls")},
	}}

	out, err := runCommand(t, fake, "instances", "-g", "grp-1", "-o", "table",
		"--category", "Walls")

	require.NoError(t, err)
	assert.Contains(t, out, "No family instances found in the selected categories")
}

func TestSummaryCommandStats(t *testing.T) {
	fake := &fakeAPI{t: t, respond: map[string][]string{
		"UsedCategories": {countsResponse(map[string]int{
			"Structural Framing": 120,
			"Structural Columns": 30,
			"Walls":              248,
		})},
	}}

	out, err := runCommand(t, fake, "summary", "-g", "grp-1", "-o", "table", "--stats")

	require.NoError(t, err)
	assert.Contains(t, out, "Walls")
	assert.Contains(t, out, "Total Categories: 20")
	assert.Contains(t, out, "Contract Categories Found: 3")
	assert.Contains(t, out, "Status: SUCCESS")
}

func TestSummaryCommandContractFile(t *testing.T) {
	fake := &fakeAPI{t: t, respond: map[string][]string{
		"UsedCategories": {countsResponse(map[string]int{"Walls": 248})},
	}}

	contractPath := filepath.Join(t.TempDir(), "contract.yaml")
	contractYAML := "required_categories:\n  - category: Walls\n    color: \"#00FF00\"\n  - category: Doors\n    color: \"#FF0000\"\n"
	require.NoError(t, os.WriteFile(contractPath, []byte(contractYAML), 0o644))

	out, err := runCommand(t, fake, "summary", "-g", "grp-1", "-o", "json",
		"--contract", contractPath)

	require.NoError(t, err)
	var body struct {
		Stats struct {
			CategoriesInContract    int    `json:"categories_in_contract"`
			ContractCategoriesFound int    `json:"contract_categories_found"`
			Status                  string `json:"status"`
		} `json:"stats"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &body))
	assert.Equal(t, 2, body.Stats.CategoriesInContract)
	assert.Equal(t, 1, body.Stats.ContractCategoriesFound)
	assert.Equal(t, "WARNING", body.Stats.Status)
}

func TestReportCommand(t *testing.T) {
	fake := &fakeAPI{t: t, respond: map[string][]string{
		"UsedCategories": {countsResponse(map[string]int{"Walls": 248})},
	}}

	outPath := filepath.Join(t.TempDir(), "summary.pdf")
	out, err := runCommand(t, fake, "report", "-g", "grp-1",
		"--out", outPath, "--label", "tower.rvt")

	require.NoError(t, err)
	assert.Contains(t, out, "Report written to")

	pdf, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.True(t, bytes.HasPrefix(pdf, []byte("%PDF-")))
}

func TestViewerCommand(t *testing.T) {
	fake := &fakeAPI{t: t, respond: map[string][]string{
		"CategoryElements": {
			externalIDsResponse("ext-a"),
			externalIDsResponse("ext-b"),
			externalIDsResponse(),
		},
	}}

	outPath := filepath.Join(t.TempDir(), "page.html")
	out, err := runCommand(t, fake, "viewer", "-g", "grp-1",
		"--urn", "urn:adsk.wipprod:fs.file:vf.abc?version=1", "--out", outPath)

	require.NoError(t, err)
	assert.Contains(t, out, "Viewer page written to")

	page, err := os.ReadFile(outPath)
	require.NoError(t, err)
	assert.Contains(t, string(page), "test-token")
	assert.Contains(t, string(page), `{"ext-a":"#FF0000"}`)
}

func TestViewerCommandRequiresURN(t *testing.T) {
	_, err := runCommand(t, &fakeAPI{t: t}, "viewer", "-g", "grp-1")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "urn")
}
