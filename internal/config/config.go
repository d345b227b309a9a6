package config

import (
	"errors"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"

	"propostas/internal/report"
)

const (
	exportsSubdir = "exports"
	auditDBFile   = "propostas.db"
)

// AppConfig 应用配置
type AppConfig struct {
	Server ServerConfig `toml:"server"`
	Data   DataConfig   `toml:"data"`
	Source SourceConfig `toml:"source"`
	Output OutputConfig `toml:"output"`
	Report ReportConfig `toml:"report"`
}

// ServerConfig 服务器配置
type ServerConfig struct {
	Port    int  `toml:"port"`
	DevMode bool `toml:"dev_mode"`
}

// DataConfig 数据配置
type DataConfig struct {
	DataDir  string `toml:"data_dir"`
	AuditLog bool   `toml:"audit_log"` // 是否记录加载/导出日志
}

// SourceConfig 源工作簿配置
type SourceConfig struct {
	Path          string            `toml:"path"`
	Sheet         string            `toml:"sheet"`
	ColumnAliases map[string]string `toml:"column_aliases"`
}

// OutputConfig 批处理输出配置
type OutputConfig struct {
	Dir         string `toml:"dir"`
	GeneralFile string `toml:"general_file"`
	MonthlyFile string `toml:"monthly_file"`
}

// ReportConfig 状态词表配置
type ReportConfig struct {
	ApprovedLabels []string `toml:"approved_labels"`
	DeniedLabels   []string `toml:"denied_labels"`
	BlankSentinels []string `toml:"blank_sentinels"`
}

// LoadConfigInfo 配置加载元信息
type LoadConfigInfo struct {
	PortSpecified bool
	ConfigPath    string
}

// DefaultConfig 默认配置
func DefaultConfig() *AppConfig {
	return &AppConfig{
		Server: ServerConfig{
			Port:    20262,
			DevMode: false,
		},
		Data: DataConfig{
			DataDir:  "data",
			AuditLog: true,
		},
		Source: SourceConfig{
			Path:          "PROPOSTAS 2025.xlsx",
			Sheet:         "PROPOSTAS JUD 1",
			ColumnAliases: map[string]string{},
		},
		Output: OutputConfig{
			Dir:         "resultados",
			GeneralFile: "Resultado_Geral.xlsx",
			MonthlyFile: "Resultado_Mensal.xlsx",
		},
		Report: ReportConfig{
			ApprovedLabels: []string{"Aprovada"},
			DeniedLabels:   []string{"Recusada"},
			BlankSentinels: []string{"vazio"},
		},
	}
}

func isPortSpecifiedInToml(data []byte) bool {
	var raw map[string]any
	if err := toml.Unmarshal(data, &raw); err != nil {
		return false
	}

	serverAny, ok := raw["server"]
	if !ok {
		return false
	}

	serverMap, ok := serverAny.(map[string]any)
	if !ok {
		return false
	}

	_, ok = serverMap["port"]
	return ok
}

// GetExeDir 获取可执行文件所在目录
func GetExeDir() (string, error) {
	exe, err := os.Executable()
	if err != nil {
		return "", err
	}
	return filepath.Dir(exe), nil
}

func baseDir() string {
	exeDir, err := GetExeDir()
	if err != nil || exeDir == "" {
		// 无法获取可执行文件目录，使用当前目录
		return "."
	}
	return exeDir
}

// LoadConfigWithInfo 从可执行文件同目录的 config.toml 加载配置并返回元信息
func LoadConfigWithInfo() (*AppConfig, LoadConfigInfo, error) {
	return LoadFromDir(baseDir())
}

// LoadFromDir 从指定目录加载 config.toml 与 .env
func LoadFromDir(dir string) (*AppConfig, LoadConfigInfo, error) {
	info := LoadConfigInfo{}
	config := DefaultConfig()

	// .env 可选；已存在的环境变量优先
	if err := godotenv.Load(filepath.Join(dir, ".env")); err != nil && !errors.Is(err, os.ErrNotExist) {
		return nil, info, err
	}

	configPath := filepath.Join(dir, "config.toml")
	data, err := os.ReadFile(configPath)
	switch {
	case err == nil:
		info.ConfigPath = configPath
		info.PortSpecified = isPortSpecifiedInToml(data)
		if err := toml.Unmarshal(data, config); err != nil {
			return nil, info, err
		}
	case os.IsNotExist(err):
		// 配置文件不存在，使用默认配置
	default:
		return nil, info, err
	}

	applyEnv(config)
	config.resolvePaths(dir)
	return config, info, nil
}

// applyEnv 环境变量覆盖
func applyEnv(config *AppConfig) {
	if v := os.Getenv("PROPOSTAS_SOURCE_PATH"); v != "" {
		config.Source.Path = v
	}
	if v := os.Getenv("PROPOSTAS_SOURCE_SHEET"); v != "" {
		config.Source.Sheet = v
	}
	if v := os.Getenv("PROPOSTAS_OUTPUT_DIR"); v != "" {
		config.Output.Dir = v
	}
}

// resolvePaths 相对路径一律相对于配置目录
func (c *AppConfig) resolvePaths(dir string) {
	if c.Source.Path != "" && !filepath.IsAbs(c.Source.Path) {
		c.Source.Path = filepath.Join(dir, c.Source.Path)
	}
	if c.Output.Dir != "" && !filepath.IsAbs(c.Output.Dir) {
		c.Output.Dir = filepath.Join(dir, c.Output.Dir)
	}
	if c.Data.DataDir != "" && !filepath.IsAbs(c.Data.DataDir) {
		c.Data.DataDir = filepath.Join(dir, c.Data.DataDir)
	}
}

// GeneralOutputPath 总报表输出路径
func (c *AppConfig) GeneralOutputPath() string {
	return filepath.Join(c.Output.Dir, c.Output.GeneralFile)
}

// MonthlyOutputPath 月度报表输出路径
func (c *AppConfig) MonthlyOutputPath() string {
	return filepath.Join(c.Output.Dir, c.Output.MonthlyFile)
}

// Vocabulary 由 [report] 配置生成状态词表
func (c *AppConfig) Vocabulary() report.Vocabulary {
	return report.Vocabulary{
		Approved:       c.Report.ApprovedLabels,
		Denied:         c.Report.DeniedLabels,
		BlankSentinels: c.Report.BlankSentinels,
	}
}

// EnsureDataDir 确保数据目录存在
func EnsureDataDir(config *AppConfig) (string, error) {
	dataDir := config.Data.DataDir
	if dataDir == "" {
		dataDir = filepath.Join(baseDir(), "data")
	}

	if err := os.MkdirAll(dataDir, 0755); err != nil {
		return "", err
	}

	if err := os.MkdirAll(ExportsDir(dataDir), 0755); err != nil {
		return "", err
	}

	return dataDir, nil
}

// ExportsDir 看板导出文件目录
func ExportsDir(dataDir string) string {
	return filepath.Join(dataDir, exportsSubdir)
}

// AuditDBPath 审计日志数据库路径
func AuditDBPath(dataDir string) string {
	return filepath.Join(dataDir, auditDBFile)
}
