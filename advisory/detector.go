package advisory

import (
	"math/rand"
	"sync"
	"time"

	"go-agrisathi/knowledge"
)

// Detector 植物图片的病害检测器。
// 真实的视觉模型接入时实现同一接口即可替换，解决器无需改动
type Detector interface {
	// Detect 返回检测到的病害记录；作物没有已知病害时ok为false
	Detect(crop string) (record knowledge.DiseaseRecord, ok bool)
}

// SimulatedDetector 模拟检测器：在作物的已知病害中等概率随机挑一条。
// 这只是真实图像分类器的占位实现
type SimulatedDetector struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSimulatedDetector 创建一个模拟检测器
func NewSimulatedDetector() *SimulatedDetector {
	return NewSimulatedDetectorSeed(time.Now().UnixNano())
}

// NewSimulatedDetectorSeed 创建指定随机种子的模拟检测器，便于测试复现
func NewSimulatedDetectorSeed(seed int64) *SimulatedDetector {
	return &SimulatedDetector{rng: rand.New(rand.NewSource(seed))}
}

// Detect 实现Detector接口
func (d *SimulatedDetector) Detect(crop string) (knowledge.DiseaseRecord, bool) {
	records := knowledge.GetDiseases(crop)
	if len(records) == 0 {
		return knowledge.DiseaseRecord{}, false
	}

	d.mu.Lock()
	idx := d.rng.Intn(len(records))
	d.mu.Unlock()

	return records[idx], true
}
