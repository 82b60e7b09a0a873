package products

import (
	"fmt"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestComposeListingWithoutFilter(t *testing.T) {
	q := ComposeListing(ListingFilter{})
	assert.NotContains(t, q.SQL, "WHERE")
	assert.Empty(t, q.Args)
	assert.True(t, strings.HasSuffix(q.SQL, listingOrder))
}

func TestComposeListingBindsNameFilter(t *testing.T) {
	name := "Coffee Cup"
	q := ComposeListing(ListingFilter{Name: &name})

	assert.Contains(t, q.SQL, "WHERE "+listingNameFilter)
	assert.NotContains(t, q.SQL, "Coffee", "filter text must never be written into SQL")
	require.Len(t, q.Args, 1)
	assert.Equal(t, "%coffee cup%", q.Args[0])
}

func TestComposeListingDoesNotLeakAcrossRequests(t *testing.T) {
	filtered := "tea"
	_ = ComposeListing(ListingFilter{Name: &filtered})
	plain := ComposeListing(ListingFilter{})
	assert.NotContains(t, plain.SQL, "WHERE")

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			name := fmt.Sprintf("item %d", i)
			q := ComposeListing(ListingFilter{Name: &name})
			assert.Equal(t, 1, strings.Count(q.SQL, "?"))
			assert.Equal(t, []any{"%" + name + "%"}, q.Args)
		}(i)
	}
	wg.Wait()
}
