// Package dataset 缓存已加载的提案表，只有显式 Reload 才会重新读取。
package dataset

import (
	"sync"
	"time"

	"github.com/google/uuid"

	"propostas/internal/model"
	"propostas/internal/parser"
)

// Source 源工作簿位置
type Source struct {
	Path    string
	Sheet   string
	Options parser.Options
}

// Snapshot 一次加载的结果
type Snapshot struct {
	LoadID    string                 `json:"loadId"`
	Path      string                 `json:"path"`
	Sheet     string                 `json:"sheet"`
	StartedAt time.Time              `json:"startedAt"`
	LoadedAt  time.Time              `json:"loadedAt"`
	TotalRows int                    `json:"totalRows"`
	Records   []model.ProposalRecord `json:"-"`
	Dropped   []parser.DroppedRow    `json:"dropped,omitempty"`
}

// LoadFunc 读取源数据
type LoadFunc func(src Source) (*parser.Result, error)

// LoadHook 每次加载（成功或失败）之后回调
type LoadHook func(snap *Snapshot, err error)

// Dataset 读穿缓存
type Dataset struct {
	mu     sync.Mutex
	source Source
	load   LoadFunc
	hook   LoadHook
	snap   *Snapshot
}

// New 创建数据集，默认用 parser.LoadWorkbook 读取
func New(src Source) *Dataset {
	return &Dataset{
		source: src,
		load: func(s Source) (*parser.Result, error) {
			return parser.LoadWorkbook(s.Path, s.Sheet, s.Options)
		},
	}
}

// WithLoader 替换读取函数（测试用）
func (d *Dataset) WithLoader(fn LoadFunc) *Dataset {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.load = fn
	return d
}

// OnLoad 注册加载回调
func (d *Dataset) OnLoad(hook LoadHook) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.hook = hook
}

// Source 返回源配置
func (d *Dataset) Source() Source {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.source
}

// Get 返回缓存；尚未加载时读取一次。加载失败不会被缓存。
func (d *Dataset) Get() (*Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.snap != nil {
		return d.snap, nil
	}
	return d.loadLocked()
}

// Reload 使缓存失效并重新读取
func (d *Dataset) Reload() (*Snapshot, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	d.snap = nil
	return d.loadLocked()
}

func (d *Dataset) loadLocked() (*Snapshot, error) {
	snap := &Snapshot{
		LoadID:    uuid.New().String(),
		Path:      d.source.Path,
		Sheet:     d.source.Sheet,
		StartedAt: time.Now(),
	}

	res, err := d.load(d.source)
	snap.LoadedAt = time.Now()
	if err != nil {
		if d.hook != nil {
			d.hook(snap, err)
		}
		return nil, err
	}

	snap.Records = res.Records
	snap.Dropped = res.Dropped
	snap.TotalRows = res.TotalRows
	d.snap = snap

	if d.hook != nil {
		d.hook(snap, nil)
	}
	return snap, nil
}
