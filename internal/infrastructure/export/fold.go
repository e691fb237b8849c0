package export

import (
	"strings"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
)

// foldTransformer descompone a NFD y elimina las marcas diacríticas, de modo
// que "Categoría" queda "Categoria" y "ñ" queda "n". Las planillas legadas
// que consumen los CSV no toleran tildes en cabeceras ni valores.
var foldTransformer = transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)

// ASCIIFold devuelve el texto sin diacríticos.
func ASCIIFold(s string) string {
	out, _, err := transform.String(foldTransformer, s)
	if err != nil {
		return s
	}
	return out
}

// sanitizeField pliega diacríticos y neutraliza los caracteres que romperían
// el formato de campo: el delimitador pasa a coma, las comillas dobles a
// simples y los saltos de línea a espacio.
func sanitizeField(s string) string {
	s = ASCIIFold(s)
	s = strings.ReplaceAll(s, ";", ",")
	s = strings.ReplaceAll(s, "\"", "'")
	s = strings.ReplaceAll(s, "\r", "")
	s = strings.ReplaceAll(s, "\n", " ")
	return s
}
