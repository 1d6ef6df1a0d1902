package service

import (
	"fmt"
	"strings"

	"github.com/loismiguel15/backendgemini/internal/domain"
)

// promptTemplate carries the literal JSON shape contract. It is the only
// enforcement mechanism on the model's output shape; everything downstream
// assumes the model may ignore it.
const promptTemplate = `Você é um elaborador especialista de provas de concursos públicos brasileiros.

Gere exatamente %d questões de múltipla escolha, inéditas, sobre o tema: "%s".
%s
Nível de dificuldade das questões: %s.

Regras de qualidade, obrigatórias:
1. Cada questão deve ter exatamente UMA alternativa correta.
2. As quatro alternativas devem ser plausíveis e mutuamente excludentes.
3. Não invente citações legais, números de leis, súmulas ou jurisprudência inexistentes.
4. Não mencione que você é um modelo de linguagem nem faça referência ao provedor do serviço.
5. A explicação de cada questão deve ter entre 2 e 5 frases.

Responda SOMENTE com um objeto JSON válido, sem nenhum texto antes ou depois, exatamente neste formato:
{
  "titulo": "Prova de Direito Administrativo",
  "tema": "Direito Administrativo",
  "questoes": [
    {
      "enunciado": "Texto completo da questão?",
      "alternativaA": "Texto da alternativa A",
      "alternativaB": "Texto da alternativa B",
      "alternativaC": "Texto da alternativa C",
      "alternativaD": "Texto da alternativa D",
      "gabarito": "A",
      "explicacao": "Justificativa da alternativa correta.",
      "nivelDificuldade": "medio"
    }
  ]
}`

// buildPrompt deterministically renders the generation instruction for a
// normalized spec.
func buildPrompt(spec *domain.ExamSpec) string {
	var banca string
	if spec.Banca == domain.BancaMista {
		banca = "Misture os estilos das principais bancas examinadoras (Cebraspe, FCC, FGV, VUNESP), variando a forma de redigir os enunciados."
	} else {
		banca = fmt.Sprintf("Siga o estilo de redação da banca examinadora %s.", spec.Banca)
	}

	return strings.TrimSpace(fmt.Sprintf(promptTemplate, spec.Quantidade, spec.Tema, banca, spec.Nivel))
}
