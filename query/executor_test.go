package query

import (
	"errors"
	"os"
	"path/filepath"
	"reflect"
	"sync"
	"testing"
	"time"

	"github.com/vegasq/jsonquery/document"
)

func loadHandler(t *testing.T, source, file string) *Handler {
	t.Helper()
	data, err := os.ReadFile(filepath.Join("testdata", file))
	if err != nil {
		t.Fatalf("failed to read fixture: %v", err)
	}
	h, err := NewHandler(source, string(data))
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	return h
}

const healthDoc = `{"id":"A1","detail":{"service":"EC2","statusCode":"open"}}`

func TestExecute_BoundParameters(t *testing.T) {
	h, err := NewHandler("T", healthDoc)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	rs, err := h.Execute("select id, detail.service from T where id = :id", Params{"id": "A1"})
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if rs.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", rs.Size())
	}
	row := rs.First()
	if got := row.GetString("id", ""); got != "A1" {
		t.Errorf("id = %q, want A1", got)
	}
	if got := row.GetString("detail.service", ""); got != "EC2" {
		t.Errorf("detail.service = %q, want EC2", got)
	}
	if !reflect.DeepEqual(rs.Columns(), []string{"id", "detail.service"}) {
		t.Errorf("Columns() = %v", rs.Columns())
	}

	rs, err = h.Execute(
		"select id, detail.service from T where id = :id and detail.statusCode = :sc",
		Params{"id": "A1", "sc": "closed"},
	)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if rs.Size() != 0 {
		t.Errorf("Size() = %d, want 0", rs.Size())
	}
	if !rs.First().IsEmpty() {
		t.Errorf("First() of empty result = %v, want empty row", rs.First())
	}
}

func TestExecute_Errors(t *testing.T) {
	h, err := NewHandler("T", healthDoc)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}

	tests := []struct {
		name    string
		query   string
		params  Params
		wantErr error
	}{
		{"wrong source", "select id from OTHER", nil, ErrInvalidQuery},
		{"unbound parameter", "select id from T where id = :id", nil, ErrUnboundParameter},
		{"one of two unbound", "select id from T where id = :id and detail.statusCode = :sc", Params{"id": "A1"}, ErrUnboundParameter},
		{"empty where", "select id from T where", nil, ErrInvalidQuery},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := h.Execute(tt.query, tt.params)
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Execute() error = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestExecute_InvalidNumber(t *testing.T) {
	h, err := NewHandler("T", `[{"version":"1.2.3"}]`)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	if _, err := h.Execute("select version from T where version >= :min", Params{"min": 1}); !errors.Is(err, ErrInvalidNumber) {
		t.Errorf("Execute() error = %v, want ErrInvalidNumber", err)
	}
}

func TestNewHandler_Malformed(t *testing.T) {
	for _, text := range []string{"", "{", `{"a":}`, "not json"} {
		if _, err := NewHandler("T", text); !errors.Is(err, document.ErrMalformedDocument) {
			t.Errorf("NewHandler(%q) error = %v, want ErrMalformedDocument", text, err)
		}
	}
}

func TestExecute_AlwaysTrue(t *testing.T) {
	h := loadHandler(t, "USER", "users.json")

	for _, where := range []string{"", " where 1 = 1", " where 'T' = 'T'", " where 't' = 't'"} {
		rs, err := h.Execute("select id from USER"+where, nil)
		if err != nil {
			t.Fatalf("Execute(%q) error = %v", where, err)
		}
		if rs.Size() != 20 {
			t.Errorf("Execute(%q) Size() = %d, want 20", where, rs.Size())
		}
	}
}

func TestExecute_Users(t *testing.T) {
	h := loadHandler(t, "USER", "users.json")
	const columns = `select  id, index, guid, isActive, balance,
        age, eyeColor, name, gender, company,
        email, phone, address, registered
from    USER
`

	tests := []struct {
		name   string
		where  string
		params Params
		want   int
	}{
		{"by id", "where id = :id", Params{"id": "668feca3b450e6d8f583b552"}, 1},
		{"inactive", "where isActive = false", Params{"index": 20}, 11},
		{"active", "where isActive = true", nil, 9},
		{"index greater", "where index > :index", Params{"index": 20}, 9},
		{"age range", "where age > 28 and age <= 30", nil, 2},
		{"numeric not lexicographic", "where age > 9", nil, 20},
		{"several params", "where gender = :gender\nand age <= :age\nand eyeColor = :eyeColor", Params{"gender": "female", "age": "30", "eyeColor": "blue"}, 3},
		{"or", "where age > 35 or eyeColor = 'blue'", nil, 14},
		{"left to right", "where gender = 'male' or eyeColor = 'blue' and isActive = true", nil, 7},
		{"missing field excludes", "where nickname = 'x'", nil, 0},
		{"missing field is empty", "where nickname = ''", nil, 20},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rs, err := h.Execute(columns+tt.where, tt.params)
			if err != nil {
				t.Fatalf("Execute() error = %v", err)
			}
			if rs.Size() != tt.want {
				t.Errorf("Size() = %d, want %d", rs.Size(), tt.want)
			}
		})
	}
}

func TestExecute_Projection(t *testing.T) {
	h := loadHandler(t, "USER", "users.json")

	rs, err := h.Execute("select id, age, tags, friends, missing from USER where index = 10", nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if rs.Size() != 1 {
		t.Fatalf("Size() = %d, want 1", rs.Size())
	}
	row := rs.First()

	if got := row.GetInt("age", 0); got != 21 {
		t.Errorf("age = %d, want 21", got)
	}
	tags := row.GetList("tags")
	if len(tags) != 2 || tags[0].String() != "gamma" || tags[1].String() != "alpha" {
		t.Errorf("tags = %v", tags)
	}
	friends := row.GetList("friends")
	if len(friends) != 2 {
		t.Fatalf("friends = %v", friends)
	}
	if got := friends[0].Map(); !reflect.DeepEqual(got, map[string]string{"id": "0", "name": "Trent"}) {
		t.Errorf("friends[0] = %v", got)
	}
	if cell, ok := row.Get("missing"); !ok || !cell.IsAbsent() {
		t.Errorf("missing = %v, %v, want absent cell", cell, ok)
	}

	values := row.Values()
	if len(values) != 5 || values[0].String() != "668feca3b450e6d8f583b540" {
		t.Errorf("Values() = %v", values)
	}
}

func TestExecute_Health(t *testing.T) {
	t.Run("single object", func(t *testing.T) {
		h := loadHandler(t, "HEALTH", "health101.json")
		rs, err := h.Execute("select id, detail.service, detail.statusCode, detail.eventScopeCode, region from HEALTH", nil)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		row := rs.First()
		want := map[string]string{
			"id":                    "7bf73129-1428-4cd3-a780-95db273d1602",
			"detail.service":        "ELASTICLOADBALANCING",
			"detail.statusCode":     "open",
			"detail.eventScopeCode": "PUBLIC",
			"region":                "ap-southeast-2",
		}
		for column, value := range want {
			if got := row.GetString(column, ""); got != value {
				t.Errorf("%s = %q, want %q", column, got, value)
			}
		}
	})

	t.Run("nested list of maps", func(t *testing.T) {
		h := loadHandler(t, "health", "health101.json")
		rs, err := h.Execute("select id, detail-type, detail.eventDescription, resources from health", nil)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		row := rs.First()
		descriptions := row.GetList("detail.eventDescription")
		if len(descriptions) != 1 || descriptions[0].Map()["language"] != "en_US" {
			t.Errorf("detail.eventDescription = %v", descriptions)
		}
		if got := row.GetString("detail-type", ""); got != "AWS Health Event" {
			t.Errorf("detail-type = %q", got)
		}
		if resources := row.GetList("resources"); resources == nil || len(resources) != 0 {
			t.Errorf("resources = %v, want empty list", resources)
		}
	})

	t.Run("array with params", func(t *testing.T) {
		h := loadHandler(t, "HEALTH", "health102.json")
		rs, err := h.Execute(
			"select time, detail.service, detail.affectedEntities from HEALTH where id = :id and source = :source and detail.statusCode = :statusCode",
			Params{"id": "26005bdb-b6eb-466d-920c-3ab19b1d7ea2", "source": "aws.health", "statusCode": "open"},
		)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if rs.Size() != 1 {
			t.Fatalf("Size() = %d, want 1", rs.Size())
		}
		row := rs.First()
		if got := row.GetString("detail.service", ""); got != "EC2" {
			t.Errorf("detail.service = %q", got)
		}
		if got := row.GetString("time", ""); got != "2023-01-27T01:43:21Z" {
			t.Errorf("time = %q", got)
		}
		entities := row.GetList("detail.affectedEntities")
		if len(entities) != 2 || entities[1].Map()["entityValue"] != "i-abcd2222" {
			t.Errorf("detail.affectedEntities = %v", entities)
		}
		// nested object inside a list element flattens to text
		if tags := entities[0].Map()["tags"]; tags != "" {
			t.Errorf("entities[0].tags = %q, want empty text", tags)
		}
	})

	t.Run("mixed date formats", func(t *testing.T) {
		h := loadHandler(t, "HEALTH", "health102.json")
		rs, err := h.Execute("select id, detail.startTime, time from HEALTH where detail.service = 'RDS' or detail.service = 'EC2'", nil)
		if err != nil {
			t.Fatalf("Execute() error = %v", err)
		}
		if rs.Size() != 3 {
			t.Fatalf("Size() = %d, want 3", rs.Size())
		}
		// 2023-01-30 in basic and week-date form
		for _, i := range []int{1, 2} {
			d, err := rs.Rows()[i].GetDate("detail.startTime", time.Time{})
			if err != nil {
				t.Fatalf("row %d GetDate() error = %v", i, err)
			}
			if got := d.Format("2006-01-02"); got != "2023-01-30" {
				t.Errorf("row %d startTime = %s, want 2023-01-30", i, got)
			}
		}
		dt, err := rs.Rows()[2].GetDateTime("time", time.Time{})
		if err != nil {
			t.Fatalf("GetDateTime() error = %v", err)
		}
		if got := dt.Format("2006-01-02T15:04:05Z07:00"); got != "2023-01-29T20:05:00Z" {
			t.Errorf("time = %s, want 2023-01-29T20:05:00Z", got)
		}
	})
}

func TestExecute_Star(t *testing.T) {
	h, err := NewHandler("T", `[{"id":"1","detail":{"a":1},"tags":[]},{"id":"2","extra":true}]`)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	rs, err := h.Execute("select * from T", nil)
	if err != nil {
		t.Fatalf("Execute() error = %v", err)
	}
	if want := []string{"id", "detail", "tags"}; !reflect.DeepEqual(rs.Columns(), want) {
		t.Errorf("Columns() = %v, want %v", rs.Columns(), want)
	}
	if rs.Size() != 2 {
		t.Errorf("Size() = %d, want 2", rs.Size())
	}
	if cell, _ := rs.Rows()[1].Get("detail"); !cell.IsAbsent() {
		t.Errorf("second record detail = %v, want absent", cell)
	}
}

func TestKeys(t *testing.T) {
	h, err := NewHandler("T", `{"a":{"b":{"c":1}}}`)
	if err != nil {
		t.Fatalf("NewHandler() error = %v", err)
	}
	if got := h.Keys(2); !reflect.DeepEqual(got, []string{"a.b"}) {
		t.Errorf("Keys(2) = %v, want [a.b]", got)
	}

	health := loadHandler(t, "HEALTH", "health102.json")
	keys := health.Keys(1)
	want := []string{"version", "id", "detail-type", "source", "account", "time", "region", "resources", "detail"}
	if !reflect.DeepEqual(keys, want) {
		t.Errorf("Keys(1) = %v, want %v", keys, want)
	}
}

func TestKeysMatching(t *testing.T) {
	h := loadHandler(t, "HEALTH", "health101.json")

	tests := []struct {
		pattern string
		want    []string
	}{
		{"detail.event*", []string{"detail.eventArn", "detail.eventTypeCode", "detail.eventTypeCategory", "detail.eventScopeCode", "detail.eventRegion", "detail.eventDescription"}},
		{"*Code", []string{"detail.eventTypeCode", "detail.eventScopeCode", "detail.statusCode"}},
		{"re?ion", []string{"region"}},
		{"nothing*", []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.pattern, func(t *testing.T) {
			got := h.KeysMatching(2, tt.pattern)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("KeysMatching(2, %q) = %v, want %v", tt.pattern, got, tt.want)
			}
		})
	}
}

func TestHandler_Concurrent(t *testing.T) {
	h := loadHandler(t, "USER", "users.json")

	var wg sync.WaitGroup
	errs := make(chan error, 8)
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			rs, err := h.Execute("select id from USER where isActive = false", nil)
			if err != nil {
				errs <- err
				return
			}
			if rs.Size() != 11 {
				errs <- errors.New("unexpected row count")
			}
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		t.Error(err)
	}
}
