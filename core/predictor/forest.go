package predictor

import (
	"math"
	"math/rand"
	"sort"
)

// treeNode is one CART node. Exported fields keep the tree JSON-serializable
// for the model artifact.
type treeNode struct {
	Leaf      bool      `json:"leaf"`
	Prob      float64   `json:"prob"`
	Feature   int       `json:"feature,omitempty"`
	Threshold float64   `json:"threshold,omitempty"`
	Left      *treeNode `json:"left,omitempty"`
	Right     *treeNode `json:"right,omitempty"`
}

// Forest is a bagged ensemble of gini-split CART trees. Probability is the
// mean positive rate of the leaves a row falls into.
type Forest struct {
	Trees       []*treeNode `json:"trees"`
	NumFeatures int         `json:"num_features"`
}

type forestConfig struct {
	trees    int
	maxDepth int
	minSplit int
	minLeaf  int
}

func defaultForestConfig() forestConfig {
	return forestConfig{trees: 50, maxDepth: 10, minSplit: 5, minLeaf: 2}
}

type grower struct {
	x          [][]float64
	y          []int
	cfg        forestConfig
	rng        *rand.Rand
	mtry       int
	total      int
	importance []float64
}

// fitForest trains a forest on row-major data. importance, when non-nil,
// accumulates normalized impurity decrease per feature.
func fitForest(x [][]float64, y []int, cfg forestConfig, rng *rand.Rand, importance []float64) *Forest {
	numFeatures := len(x[0])
	mtry := int(math.Sqrt(float64(numFeatures)))
	if mtry < 1 {
		mtry = 1
	}
	g := &grower{x: x, y: y, cfg: cfg, rng: rng, mtry: mtry, total: len(x), importance: importance}

	f := &Forest{NumFeatures: numFeatures}
	for t := 0; t < cfg.trees; t++ {
		sample := make([]int, len(x))
		for i := range sample {
			sample[i] = rng.Intn(len(x))
		}
		f.Trees = append(f.Trees, g.grow(sample, 0))
	}
	if importance != nil {
		var sum float64
		for _, v := range importance {
			sum += v
		}
		if sum > 0 {
			for i := range importance {
				importance[i] /= sum
			}
		}
	}
	return f
}

func (g *grower) grow(idx []int, depth int) *treeNode {
	pos := 0
	for _, i := range idx {
		pos += g.y[i]
	}
	p := float64(pos) / float64(len(idx))
	if depth >= g.cfg.maxDepth || len(idx) < g.cfg.minSplit || pos == 0 || pos == len(idx) {
		return &treeNode{Leaf: true, Prob: p}
	}

	feat, threshold, gain := g.bestSplit(idx, p)
	if feat < 0 {
		return &treeNode{Leaf: true, Prob: p}
	}
	if g.importance != nil {
		g.importance[feat] += float64(len(idx)) / float64(g.total) * gain
	}

	var left, right []int
	for _, i := range idx {
		if g.x[i][feat] <= threshold {
			left = append(left, i)
		} else {
			right = append(right, i)
		}
	}
	return &treeNode{
		Feature:   feat,
		Threshold: threshold,
		Left:      g.grow(left, depth+1),
		Right:     g.grow(right, depth+1),
	}
}

// bestSplit scans a random feature subset for the split with the largest
// gini decrease, honoring the min-leaf constraint. Returns feature -1 when
// no valid split exists.
func (g *grower) bestSplit(idx []int, parentP float64) (int, float64, float64) {
	parentGini := 2 * parentP * (1 - parentP)

	perm := g.rng.Perm(len(g.x[0]))
	features := perm[:g.mtry]

	bestFeat := -1
	var bestThreshold, bestGain float64
	sorted := make([]int, len(idx))
	for _, feat := range features {
		copy(sorted, idx)
		sort.Slice(sorted, func(a, b int) bool { return g.x[sorted[a]][feat] < g.x[sorted[b]][feat] })

		leftPos := 0
		totalPos := 0
		for _, i := range sorted {
			totalPos += g.y[i]
		}
		n := len(sorted)
		for k := 1; k < n; k++ {
			leftPos += g.y[sorted[k-1]]
			prev, cur := g.x[sorted[k-1]][feat], g.x[sorted[k]][feat]
			if prev == cur {
				continue
			}
			if k < g.cfg.minLeaf || n-k < g.cfg.minLeaf {
				continue
			}
			pl := float64(leftPos) / float64(k)
			pr := float64(totalPos-leftPos) / float64(n-k)
			weighted := (float64(k)*2*pl*(1-pl) + float64(n-k)*2*pr*(1-pr)) / float64(n)
			gain := parentGini - weighted
			if gain > bestGain {
				bestGain = gain
				bestFeat = feat
				bestThreshold = (prev + cur) / 2
			}
		}
	}
	if bestGain <= 0 {
		return -1, 0, 0
	}
	return bestFeat, bestThreshold, bestGain
}

// Prob returns the ensemble probability of the positive class for one row.
func (f *Forest) Prob(row []float64) float64 {
	if len(f.Trees) == 0 {
		return 0.5
	}
	var sum float64
	for _, t := range f.Trees {
		sum += t.predict(row)
	}
	return sum / float64(len(f.Trees))
}

func (n *treeNode) predict(row []float64) float64 {
	for !n.Leaf {
		if row[n.Feature] <= n.Threshold {
			n = n.Left
		} else {
			n = n.Right
		}
	}
	return n.Prob
}

func (f *Forest) valid(numFeatures int) bool {
	return f != nil && len(f.Trees) > 0 && f.NumFeatures == numFeatures
}
