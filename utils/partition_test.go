package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPartitionMap(t *testing.T) {
	getHisto := func(K, Np int) (histo map[int]int) {
		pm := NewPartitionMap(Np, K)
		histo = make(map[int]int)
		for np := 0; np < pm.ParallelDegree; np++ {
			histo[pm.GetBucketDimension(np)]++
		}
		return
	}
	{ // Balance
		assert.Equal(t, map[int]int{0: 30, 1: 2}, getHisto(2, 32))
		assert.Equal(t, map[int]int{1: 32}, getHisto(32, 32))
		assert.Equal(t, map[int]int{8: 32}, getHisto(256, 32))
		assert.Equal(t, map[int]int{8: 1, 9: 31}, getHisto(287, 32))
	}
	{ // Buckets tile the index range in order, with an imbalance of at most one
		for n := 1; n < 500; n++ {
			for np := 1; np <= 7; np++ {
				pm := NewPartitionMap(np, n)
				var next, smallest, largest = 0, n, 0
				for bn := 0; bn < np; bn++ {
					kMin, kMax := pm.GetBucketRange(bn)
					assert.Equal(t, next, kMin)
					next = kMax
					smallest = min(smallest, kMax-kMin)
					largest = max(largest, kMax-kMin)
				}
				assert.Equal(t, n, next)
				assert.LessOrEqual(t, largest-smallest, 1)
			}
		}
	}
}
