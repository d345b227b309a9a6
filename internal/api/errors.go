package api

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"propostas/internal/parser"
)

type errorResponse struct {
	Error string `json:"error"`
	Hint  string `json:"hint,omitempty"`
}

// respondLoadError 把加载错误转换为面向用户的提示
func (h *Handler) respondLoadError(c *gin.Context, err error) {
	src := h.data.Source()

	var missingCol *parser.MissingColumnError
	switch {
	case errors.Is(err, parser.ErrMissingFile):
		c.JSON(http.StatusNotFound, errorResponse{
			Error: fmt.Sprintf("Arquivo não encontrado: %s", src.Path),
			Hint:  "Por favor, certifique-se de que o arquivo de propostas está no local configurado.",
		})
	case errors.As(err, &missingCol):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Error: fmt.Sprintf("Coluna '%s' não encontrada na planilha", missingCol.Column),
			Hint:  "Verifique se a planilha contém todas as colunas necessárias.",
		})
	case errors.Is(err, parser.ErrMissingSheet):
		c.JSON(http.StatusUnprocessableEntity, errorResponse{
			Error: fmt.Sprintf("Aba '%s' não encontrada na planilha", src.Sheet),
			Hint:  "Verifique o nome da aba configurada.",
		})
	default:
		c.JSON(http.StatusInternalServerError, errorResponse{
			Error: "Erro ao carregar os dados: " + err.Error(),
			Hint:  "Verifique se o arquivo está no formato correto e se todas as colunas necessárias estão presentes.",
		})
	}
}
