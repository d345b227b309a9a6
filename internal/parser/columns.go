package parser

// ResolveColumns 在表头中定位必需列；先按别名重命名再匹配
func ResolveColumns(header []string, aliases map[string]string) (map[string]int, error) {
	normAliases := make(map[string]string, len(aliases))
	for from, to := range aliases {
		normAliases[NormalizeColumnName(from)] = NormalizeColumnName(to)
	}

	index := make(map[string]int, len(header))
	for i, h := range header {
		name := NormalizeColumnName(h)
		if name == "" {
			continue
		}
		if renamed, ok := normAliases[name]; ok {
			name = renamed
		}
		// 同名列取第一列
		if _, exists := index[name]; !exists {
			index[name] = i
		}
	}

	out := make(map[string]int, len(RequiredColumns))
	for _, col := range RequiredColumns {
		idx, ok := index[NormalizeColumnName(col)]
		if !ok {
			return nil, &MissingColumnError{Column: col}
		}
		out[col] = idx
	}
	return out, nil
}
