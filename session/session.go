// Package session offers a row-oriented facade over a query handler.
package session

import (
	"github.com/vegasq/jsonquery/query"
	"github.com/vegasq/jsonquery/result"
)

// Querier runs queries and lists document keys. *query.Handler implements it.
type Querier interface {
	Execute(text string, params query.Params) (*result.ResultSet, error)
	Keys(depth int) []string
}

// Session forwards queries to a Querier and unwraps their results
type Session struct {
	q Querier
}

// New returns a session backed by q
func New(q Querier) *Session {
	return &Session{q: q}
}

// Execute runs a query and returns its full result set
func (s *Session) Execute(text string, params query.Params) (*result.ResultSet, error) {
	return s.q.Execute(text, params)
}

// QueryForObject returns the first row of the result, or an empty row when
// nothing matched
func (s *Session) QueryForObject(text string, params query.Params) (result.Row, error) {
	rs, err := s.q.Execute(text, params)
	if err != nil {
		return result.Row{}, err
	}
	return rs.First(), nil
}

// QueryForList returns every row of the result
func (s *Session) QueryForList(text string, params query.Params) ([]result.Row, error) {
	rs, err := s.q.Execute(text, params)
	if err != nil {
		return nil, err
	}
	return rs.Rows(), nil
}

// Keys lists document keys down to depth. A depth below one is treated as one.
func (s *Session) Keys(depth int) []string {
	if depth < 1 {
		depth = 1
	}
	return s.q.Keys(depth)
}
