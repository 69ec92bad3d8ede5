package search

import (
	"iter"
	"strings"
)

type Mode int

const (
	CaseSensitive Mode = iota
	CaseInsensitive
)

func (m Mode) String() string {
	if m == CaseInsensitive {
		return "case-insensitive"
	}
	return "case-sensitive"
}

// Lines возвращает строки contents без разделителей \n и \r\n.
// Завершающий разделитель не дает лишней пустой строки в конце.
func Lines(contents string) iter.Seq[string] {
	return func(yield func(string) bool) {
		for line := range strings.Lines(contents) {
			// \r отрезается только вместе с \n, одиночный \r остается в строке
			if l, ok := strings.CutSuffix(line, "\n"); ok {
				line = strings.TrimSuffix(l, "\r")
			}
			if !yield(line) {
				return
			}
		}
	}
}

// Search возвращает строки, содержащие query с точным совпадением регистра
func Search(query, contents string) []string {
	return Find(CaseSensitive, query, contents)
}

// SearchCaseInsensitive сравнивает строки в нижнем регистре, найденные строки обрезаются по пробелам
func SearchCaseInsensitive(query, contents string) []string {
	return Find(CaseInsensitive, query, contents)
}

// Find выполняет поиск в выбранном режиме. Результат ссылается на подстроки contents.
func Find(mode Mode, query, contents string) []string {
	var results []string
	var matcher func(string) (string, bool) // проверяет строку и возвращает то, что попадет в результат

	if mode == CaseInsensitive {
		query = strings.ToLower(query)
		matcher = func(line string) (string, bool) {
			if strings.Contains(strings.ToLower(line), query) {
				return strings.TrimSpace(line), true
			}
			return "", false
		}
	} else {
		matcher = func(line string) (string, bool) {
			return line, strings.Contains(line, query)
		}
	}

	for line := range Lines(contents) {
		if out, ok := matcher(line); ok {
			results = append(results, out)
		}
	}
	return results
}
