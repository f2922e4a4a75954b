package predictor

import (
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"gonum.org/v1/gonum/stat"

	"github.com/YashRawat0947/SIH-2025/core/features"
	"github.com/YashRawat0947/SIH-2025/core/logger"
	"github.com/YashRawat0947/SIH-2025/core/model"
)

// Training data below this row count is rejected outright.
const minTrainingSamples = 10

const testFraction = 0.2

// Predictor estimates the induction propensity per train. Untrained it
// answers with the deterministic rule score; after Train it runs the fitted
// forest over scaled features. Instances are not safe for concurrent use
// across planning cycles: the feature registry and scaler are replaced in
// place during training.
type Predictor struct {
	builder   *features.Builder
	scaler    *Scaler
	forest    *Forest
	cfg       forestConfig
	log       logger.Logger
	trained   bool
	trainedAt time.Time
}

// New returns an untrained predictor.
func New(log logger.Logger) *Predictor {
	if log == nil {
		log = logger.Nop{}
	}
	return &Predictor{
		builder: features.NewBuilder(),
		cfg:     defaultForestConfig(),
		log:     log,
	}
}

// Trained reports whether a fitted model is loaded.
func (p *Predictor) Trained() bool { return p.trained }

// FeatureWeight pairs a feature column with its importance.
type FeatureWeight struct {
	Name   string  `json:"name"`
	Weight float64 `json:"weight"`
}

// TrainingReport summarizes one training run.
type TrainingReport struct {
	Accuracy          float64         `json:"accuracy"`
	CVMean            float64         `json:"cv_mean"`
	CVStd             float64         `json:"cv_std"`
	FeatureImportance []FeatureWeight `json:"feature_importance"`
	// ConfusionMatrix is indexed [actual][predicted].
	ConfusionMatrix [2][2]int `json:"confusion_matrix"`
	TrainSize       int       `json:"training_size"`
	TestSize        int       `json:"test_size"`
}

// Train fits the forest on the given trains. When labels is nil, synthetic
// labels are derived from the business rules with one rng draw per row. A
// failed run leaves any previously fitted state untouched; a successful one
// replaces it wholesale.
func (p *Predictor) Train(trains []model.TrainRecord, labels []int, rng *rand.Rand) (*TrainingReport, error) {
	if rng == nil {
		rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	if len(trains) < minTrainingSamples {
		return nil, fmt.Errorf("%w: got %d samples, need at least %d", ErrInsufficientData, len(trains), minTrainingSamples)
	}
	if labels == nil {
		labels = SyntheticLabels(trains, rng)
	}
	if len(labels) != len(trains) {
		return nil, fmt.Errorf("%w: %d labels for %d trains", model.ErrMalformedRecord, len(labels), len(trains))
	}
	var pos int
	for _, y := range labels {
		pos += y
	}
	if pos == 0 || pos == len(labels) {
		return nil, fmt.Errorf("%w: single-class labels, stratified split impossible", ErrInsufficientData)
	}

	// Fit into fresh state so a failure cannot clobber the current model.
	builder := features.NewBuilder()
	frame, err := builder.Build(trains)
	if err != nil {
		return nil, err
	}

	trainIdx, testIdx := stratifiedSplit(labels, testFraction, rng)

	rows := frame.Rows()
	trainRows := pick(rows, trainIdx)
	scaler := &Scaler{}
	scaler.Fit(trainRows)
	scaled := scaler.TransformAll(rows)

	trainX, trainY := pick(scaled, trainIdx), pickInt(labels, trainIdx)
	testX, testY := pick(scaled, testIdx), pickInt(labels, testIdx)

	importance := make([]float64, len(frame.Cols))
	forest := fitForest(trainX, trainY, p.cfg, rng, importance)

	report := &TrainingReport{
		TrainSize: len(trainIdx),
		TestSize:  len(testIdx),
	}
	correct := 0
	for i, row := range testX {
		pred := 0
		if forest.Prob(row) > 0.5 {
			pred = 1
		}
		if pred == testY[i] {
			correct++
		}
		report.ConfusionMatrix[testY[i]][pred]++
	}
	report.Accuracy = float64(correct) / float64(len(testX))
	report.CVMean, report.CVStd = crossValidate(trainX, trainY, 5, p.cfg, rng)

	for j, w := range importance {
		report.FeatureImportance = append(report.FeatureImportance, FeatureWeight{Name: frame.Cols[j], Weight: w})
	}
	sort.SliceStable(report.FeatureImportance, func(a, b int) bool {
		return report.FeatureImportance[a].Weight > report.FeatureImportance[b].Weight
	})

	builder.Record(frame.Cols)
	p.builder = builder
	p.scaler = scaler
	p.forest = forest
	p.trained = true
	p.trainedAt = time.Now()

	p.log.Infof("model trained: accuracy %.3f, cv %.3f±%.3f, %d train / %d test",
		report.Accuracy, report.CVMean, report.CVStd, report.TrainSize, report.TestSize)
	return report, nil
}

// Predict returns per-train predictions. Untrained predictors answer with
// the rule score; trained ones run the forest over aligned, scaled features.
func (p *Predictor) Predict(trains []model.TrainRecord) (map[string]model.PredictionResult, error) {
	results := make(map[string]model.PredictionResult, len(trains))
	if !p.trained {
		for _, t := range trains {
			results[t.ID] = resultFromProb(RuleProbability(t))
		}
		return results, nil
	}
	if len(trains) == 0 {
		return nil, model.ErrEmptyDataset
	}
	frame, err := p.builder.Build(trains)
	if err != nil {
		return nil, err
	}
	for i := 0; i < frame.Len(); i++ {
		prob := p.forest.Prob(p.scaler.Transform(frame.Row(i)))
		results[frame.IDs[i]] = resultFromProb(prob)
	}
	return results, nil
}

func resultFromProb(prob float64) model.PredictionResult {
	label := 0
	if prob > 0.5 {
		label = 1
	}
	return model.PredictionResult{
		Label:       label,
		Probability: prob,
		Confidence:  math.Abs(prob-0.5) * 2,
	}
}

// stratifiedSplit reserves testFrac of each class for evaluation, at least
// one row per class on each side.
func stratifiedSplit(labels []int, testFrac float64, rng *rand.Rand) (trainIdx, testIdx []int) {
	var byClass [2][]int
	for i, y := range labels {
		byClass[y] = append(byClass[y], i)
	}
	for _, class := range byClass {
		rng.Shuffle(len(class), func(a, b int) { class[a], class[b] = class[b], class[a] })
		nTest := int(float64(len(class))*testFrac + 0.5)
		if nTest < 1 {
			nTest = 1
		}
		if nTest >= len(class) {
			nTest = len(class) - 1
		}
		testIdx = append(testIdx, class[:nTest]...)
		trainIdx = append(trainIdx, class[nTest:]...)
	}
	sort.Ints(trainIdx)
	sort.Ints(testIdx)
	return trainIdx, testIdx
}

// crossValidate runs k-fold validation and returns mean and population
// standard deviation of the fold accuracies.
func crossValidate(x [][]float64, y []int, k int, cfg forestConfig, rng *rand.Rand) (mean, std float64) {
	if k > len(x) {
		k = len(x)
	}
	idx := rng.Perm(len(x))
	var scores []float64
	for fold := 0; fold < k; fold++ {
		var trainI, testI []int
		for pos, i := range idx {
			if pos%k == fold {
				testI = append(testI, i)
			} else {
				trainI = append(trainI, i)
			}
		}
		if len(testI) == 0 || len(trainI) == 0 {
			continue
		}
		forest := fitForest(pick(x, trainI), pickInt(y, trainI), cfg, rng, nil)
		correct := 0
		for _, i := range testI {
			pred := 0
			if forest.Prob(x[i]) > 0.5 {
				pred = 1
			}
			if pred == y[i] {
				correct++
			}
		}
		scores = append(scores, float64(correct)/float64(len(testI)))
	}
	if len(scores) == 0 {
		return 0, 0
	}
	return stat.Mean(scores, nil), stat.PopStdDev(scores, nil)
}

func pick(rows [][]float64, idx []int) [][]float64 {
	out := make([][]float64, len(idx))
	for i, j := range idx {
		out[i] = rows[j]
	}
	return out
}

func pickInt(vals []int, idx []int) []int {
	out := make([]int, len(idx))
	for i, j := range idx {
		out[i] = vals[j]
	}
	return out
}
