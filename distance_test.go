package sixdegrees

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestDistancesFrom(t *testing.T) {
	g := Build(append(pathEdges(5), Edge{From: 8, To: 9}))
	distances, err := DistancesFrom(g, 1)
	require.Nil(t, err)
	require.Equal(t, map[uint32]int{2: 1, 3: 2, 4: 3, 5: 4}, distances)

	distances, err = DistancesFrom(g, 3)
	require.Nil(t, err)
	require.Equal(t, map[uint32]int{1: 2, 2: 1, 4: 1, 5: 2}, distances)

	distances, err = DistancesFrom(g, 9)
	require.Nil(t, err)
	require.Equal(t, map[uint32]int{8: 1}, distances)

	_, err = DistancesFrom(g, 6)
	require.ErrorIs(t, err, ErrVertexNotFound)
}

func TestDistancesFromSelfLoop(t *testing.T) {
	g := Build([]Edge{{From: 1, To: 1}, {From: 1, To: 2}})
	distances, err := DistancesFrom(g, 1)
	require.Nil(t, err)
	require.Equal(t, map[uint32]int{2: 1}, distances)
}

func TestAverageDistancePath(t *testing.T) {
	for _, n := range []int{2, 3, 7, 25} {
		g := Build(pathEdges(n))
		// sum over ordered pairs of |i-j| is n(n^2-1)/3, divided by n(n-1)
		expected := float64(n+1) / 3
		avg, err := AverageDistance(context.Background(), g, 1)
		require.Nil(t, err)
		require.InDelta(t, expected, avg, 1e-12, "path of %d vertices", n)
	}
}

func TestProfileDistances(t *testing.T) {
	g := Build(append(pathEdges(7), Edge{From: 20, To: 21}))
	summary, err := ProfileDistances(context.Background(), g, 1)
	require.Nil(t, err)
	// 42 ordered pairs on the path, 2 on the extra edge
	require.EqualValues(t, 44, summary.ReachablePairs)
	require.EqualValues(t, 7*48/3+2, summary.TotalDistance)
	require.Equal(t, 6, summary.Diameter)
	require.InDelta(t, float64(summary.TotalDistance)/44, summary.Average, 1e-12)
}

func TestAverageDistanceNoPairs(t *testing.T) {
	avg, err := AverageDistance(context.Background(), Build(nil), 1)
	require.Nil(t, err)
	require.Equal(t, 0.0, avg)

	summary, err := ProfileDistances(context.Background(), Build([]Edge{{From: 3, To: 3}}), 1)
	require.Nil(t, err)
	require.Equal(t, 0.0, summary.Average)
	require.EqualValues(t, 0, summary.ReachablePairs)
	require.Equal(t, 0, summary.Diameter)
}

func TestProfileDistancesConcurrent(t *testing.T) {
	g := Build(randomEdges(250, 400, 11))
	sequential, err := ProfileDistances(context.Background(), g, 1)
	require.Nil(t, err)
	concurrent, err := ProfileDistances(context.Background(), g, 4)
	require.Nil(t, err)
	require.Equal(t, sequential, concurrent)

	again, err := ProfileDistances(context.Background(), g, 4)
	require.Nil(t, err)
	require.Equal(t, concurrent, again)
}
