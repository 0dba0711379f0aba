package query

import (
	"context"

	sdk "github.com/cosmos/cosmos-sdk/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestDef describes one QueryServer endpoint under test.
// R is the request message type. S is the response message type.
type TestDef[R any, S any] struct {
	// QueryName names the endpoint in assertion messages.
	QueryName string
	// Query is the endpoint function to invoke.
	Query func(goCtx context.Context, req *R) (*S, error)
}

// TestCase is one invocation of the endpoint with its expected outcome.
// R is the request message type. S is the response message type.
type TestCase[R any, S any] struct {
	// Name is the name of the test case.
	Name string
	// Setup performs any needed state preparation. It runs against a cached
	// context, so its writes never leak into other test cases.
	Setup func()
	// Req is the request message to provide to the query.
	Req *R
	// ExpectedResp is the expected response. Ignored when an error is expected.
	ExpectedResp *S
	// ExpectedErrSubstrs are substrings that must all appear in the returned
	// error. When empty, the error is expected to be nil.
	ExpectedErrSubstrs []string
}

// TestSuiter is the slice of a testify suite the runner needs: a swappable
// context plus the usual assertion handles.
type TestSuiter interface {
	Context() sdk.Context
	SetContext(ctx sdk.Context)
	Require() *require.Assertions
	Assert() *assert.Assertions
}

// RunTestCase invokes an endpoint against a cached context and checks the
// outcome. The suite's context is restored afterwards, so state written by
// one case is invisible to the next.
func RunTestCase[R any, S any](s TestSuiter, td TestDef[R, S], tc TestCase[R, S]) {
	origCtx := s.Context()
	defer s.SetContext(origCtx)

	cacheCtx, _ := origCtx.CacheContext()
	s.SetContext(cacheCtx)

	if tc.Setup != nil {
		tc.Setup()
	}

	var resp *S
	var err error
	s.Require().NotPanicsf(func() {
		resp, err = td.Query(s.Context(), tc.Req)
	}, "%s panicked", td.QueryName)

	if len(tc.ExpectedErrSubstrs) > 0 {
		s.Require().Errorf(err, "%s error", td.QueryName)
		for _, substr := range tc.ExpectedErrSubstrs {
			s.Assert().Containsf(err.Error(), substr, "%s error missing expected substring", td.QueryName)
		}
		return
	}

	s.Assert().NoErrorf(err, "%s error", td.QueryName)
	s.Assert().Equalf(tc.ExpectedResp, resp, "%s response", td.QueryName)
}
