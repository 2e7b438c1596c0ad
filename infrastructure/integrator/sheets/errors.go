package sheets

import "errors"

// ErrUpstreamUnavailable é devolvido para qualquer falha ao ler a planilha
var ErrUpstreamUnavailable = errors.New("provedor da planilha indisponível")
