package sim

import (
	"strconv"
	"strings"
)

// BuildName joins a parent name and an element name with a dot. An empty
// parent yields the element name alone.
func BuildName(parentName, elementName string) string {
	if parentName == "" {
		return elementName
	}

	return parentName + "." + elementName
}

// BuildNameWithIndex builds names like "Network.Router[3]".
func BuildNameWithIndex(parentName, elementName string, index int) string {
	return BuildNameWithMultiDimensionalIndex(
		parentName, elementName, []int{index})
}

// BuildNameWithMultiDimensionalIndex builds names like
// "Network.Router[1][2]", one bracket per index entry.
func BuildNameWithMultiDimensionalIndex(
	parentName, elementName string,
	index []int,
) string {
	var sb strings.Builder

	sb.WriteString(BuildName(parentName, elementName))

	for _, i := range index {
		sb.WriteByte('[')
		sb.WriteString(strconv.Itoa(i))
		sb.WriteByte(']')
	}

	return sb.String()
}

// NameMustBeValid panics if the name does not follow the naming convention:
// dot-separated elements, each non-empty, starting with a capital letter,
// free of '_', '-' and quotes, with balanced integer indices in brackets.
func NameMustBeValid(name string) {
	if name == "" {
		panic("name must not be empty")
	}

	for _, elem := range strings.Split(name, ".") {
		elemMustBeValid(name, elem)
	}
}

func elemMustBeValid(name, elem string) {
	base, indices, found := strings.Cut(elem, "[")
	if base == "" {
		panic("name " + name + " has an empty element")
	}

	if strings.ContainsAny(base, "_-\"']") {
		panic("name " + name + " contains an invalid character")
	}

	if base[0] < 'A' || base[0] > 'Z' {
		panic("name " + name + " must start with a capital letter")
	}

	if !found {
		return
	}

	indicesMustBeValid(name, "["+indices)
}

func indicesMustBeValid(name, indices string) {
	for indices != "" {
		if indices[0] != '[' {
			panic("name " + name + " has unmatched brackets")
		}

		end := strings.IndexByte(indices, ']')
		if end < 0 {
			panic("name " + name + " has unmatched brackets")
		}

		if _, err := strconv.Atoi(indices[1:end]); err != nil {
			panic("name " + name + " has a non-integer index")
		}

		indices = indices[end+1:]
	}
}
