package query

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestElementAt(t *testing.T) {
	for i, want := range people {
		got, err := ElementAt(From(people), i)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	}
}

func TestElementAt_OutOfRange(t *testing.T) {
	for _, n := range []int{-1, len(people), 100} {
		t.Run(fmt.Sprint(n), func(t *testing.T) {
			_, err := ElementAt(From(people), n)
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrOutOfRange)
			assert.True(t, IsNotFound(err))
			assert.False(t, IsAmbiguous(err))

			assert.Equal(t, person{}, ElementAtOrDefault(From(people), n))
		})
	}
}

func TestElementAt_MessageCarriesLength(t *testing.T) {
	_, err := ElementAt(From(people), 12)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "index 12 outside [0, 6)")
	assert.Contains(t, err.Error(), "ElementAt")
}

func TestFirstLast(t *testing.T) {
	inDept2 := func(p person) bool { return p.dept == 2 }

	first, err := First(From(people), inDept2)
	require.NoError(t, err)
	assert.Equal(t, 2, first.id)

	last, err := Last(From(people), inDept2)
	require.NoError(t, err)
	assert.Equal(t, 3, last.id)

	first, err = First(From(people))
	require.NoError(t, err)
	assert.Equal(t, 1, first.id)

	last, err = Last(From(people))
	require.NoError(t, err)
	assert.Equal(t, 6, last.id)
}

func TestFirstLast_MultiplePredicates(t *testing.T) {
	inDept1 := func(p person) bool { return p.dept == 1 }
	paid60 := func(p person) bool { return p.pay == 60 }

	last, err := Last(From(people), inDept1, paid60)
	require.NoError(t, err)
	assert.Equal(t, 6, last.id)
}

func TestFirstLast_NotFound(t *testing.T) {
	none := func(p person) bool { return p.dept == 99 }

	_, err := First(From(people), none)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, person{}, FirstOrDefault(From(people), none))

	_, err = Last(From(people), none)
	assert.ErrorIs(t, err, ErrNotFound)
	assert.Equal(t, person{}, LastOrDefault(From(people), none))

	_, err = First(From([]person{}))
	assert.True(t, IsNotFound(err))
}

func TestSingle(t *testing.T) {
	testCases := []struct {
		name      string
		pred      func(person) bool
		wantID    int
		wantErr   error
		defaultOK bool
	}{
		{name: "exactly one", pred: func(p person) bool { return p.dept == 3 }, wantID: 5, defaultOK: true},
		{name: "none", pred: func(p person) bool { return p.dept == 99 }, wantErr: ErrNotFound, defaultOK: true},
		{name: "two", pred: func(p person) bool { return p.dept == 2 }, wantErr: ErrAmbiguous},
		{name: "many", pred: func(p person) bool { return p.pay > 0 }, wantErr: ErrAmbiguous},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := Single(From(people), tc.pred)
			if tc.wantErr != nil {
				assert.ErrorIs(t, err, tc.wantErr)
			} else {
				require.NoError(t, err)
				assert.Equal(t, tc.wantID, got.id)
			}

			got, err = SingleOrDefault(From(people), tc.pred)
			if !tc.defaultOK {
				assert.True(t, IsAmbiguous(err), "ambiguity is never suppressed")
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.wantID, got.id)
		})
	}
}

func TestSingle_NoPredicate(t *testing.T) {
	got, err := Single(From(people[:1]))
	require.NoError(t, err)
	assert.Equal(t, 1, got.id)

	_, err = Single(From(people))
	assert.True(t, IsAmbiguous(err))
}

func TestError_WrappedMatching(t *testing.T) {
	_, err := Single(From(people), func(p person) bool { return p.dept == 2 })
	wrapped := fmt.Errorf("demo: %w", err)

	assert.True(t, IsAmbiguous(wrapped))
	assert.True(t, errors.Is(wrapped, ErrAmbiguous))
	assert.False(t, errors.Is(wrapped, ErrNotFound))

	var qe *Error
	require.True(t, errors.As(wrapped, &qe))
	assert.Equal(t, "Single", qe.Op)
	assert.Equal(t, CodeAmbiguous, qe.Code)
}

func TestIsHelpers_NonQueryError(t *testing.T) {
	assert.False(t, IsNotFound(errors.New("boom")))
	assert.False(t, IsAmbiguous(nil))
}
