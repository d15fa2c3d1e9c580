package synthetic

import (
	"crypto/sha256"
	"encoding/binary"
	"fmt"
	"math"
	"math/rand"
	"strconv"
	"strings"
	"time"

	"github.com/diillson/ec2-rightsizing-go/internal/domain/entity"
	"github.com/diillson/ec2-rightsizing-go/internal/domain/repository"
)

// instanceFamily é uma família de instância com os tamanhos que ela oferece.
type instanceFamily struct {
	name  string
	sizes []string
}

var families = []instanceFamily{
	{"t3", []string{"micro", "small", "medium", "large", "xlarge", "2xlarge"}},
	{"t4g", []string{"small", "medium", "large", "xlarge", "2xlarge"}},
	{"m6i", []string{"large", "xlarge", "2xlarge"}},
	{"m7i", []string{"large", "xlarge", "2xlarge"}},
	{"c7g", []string{"large", "xlarge", "2xlarge"}},
	{"r6i", []string{"large", "xlarge", "2xlarge"}},
}

// sizeOrder ordena os tamanhos do menor para o maior.
var sizeOrder = []string{"micro", "small", "medium", "large", "xlarge", "2xlarge", "4xlarge", "8xlarge"}

// unknownExpectedCost aparece no lugar do custo do target quando não há
// estimativa de preço.
const unknownExpectedCost = "—"

const hexDigits = "0123456789abcdef"

// SyntheticRepositoryImpl implementa o SyntheticRepository.
type SyntheticRepositoryImpl struct{}

// NewSyntheticRepository cria uma nova implementação do SyntheticRepository.
func NewSyntheticRepository() repository.SyntheticRepository {
	return &SyntheticRepositoryImpl{}
}

// Generate produz entre 2 e 5 recomendações no formato do Cost Explorer,
// semeadas pela data: rodar de novo no mesmo dia devolve o mesmo relatório.
func (g *SyntheticRepositoryImpl) Generate(accountID string, date time.Time) (entity.SyntheticSummary, []entity.RightsizingRecommendation) {
	rng := rand.New(rand.NewSource(dailySeed(date)))

	count := 2 + rng.Intn(4)
	recommendations := make([]entity.RightsizingRecommendation, 0, count)
	total := 0.0

	for i := 0; i < count; i++ {
		currentType := pickInstanceType(rng)
		targetType := smallerType(rng, currentType)
		isModify := rng.Float64() > 0.25

		monthlySavings := roundCents(3.0 + rng.Float64()*117.0)
		total += monthlySavings
		savings := entity.Money{Amount: formatAmount(monthlySavings), Unit: "USD"}

		if isModify {
			target := entity.NewTargetInstance(targetType, savings, entity.Money{Amount: unknownExpectedCost, Unit: "USD"})
			recommendations = append(recommendations, entity.NewModifyRecommendation(
				accountID,
				randomInstanceID(rng),
				fmt.Sprintf("app-%d", 10+rng.Intn(90)),
				currentType,
				[]entity.TargetInstance{target},
				savings,
			))
		} else {
			recommendations = append(recommendations, entity.NewTerminateRecommendation(
				accountID,
				randomInstanceID(rng),
				fmt.Sprintf("batch-%d", 10+rng.Intn(90)),
				currentType,
				savings,
			))
		}
	}

	summary := entity.SyntheticSummary{
		TotalEstimatedMonthlySavingsAmount:   formatAmount(total),
		TotalEstimatedMonthlySavingsCurrency: "USD",
		EstimatedSavingsPercentage:           formatAmount(roundCents(5.0 + rng.Float64()*50.0)),
	}

	return summary, recommendations
}

// dailySeed deriva a semente do dia (UTC) via SHA-256 da data formatada.
func dailySeed(date time.Time) int64 {
	day := date.UTC().Format("2006-01-02")
	digest := sha256.Sum256([]byte(day))
	return int64(binary.BigEndian.Uint64(digest[:8]))
}

func pickInstanceType(rng *rand.Rand) string {
	family := families[rng.Intn(len(families))]
	return family.name + "." + family.sizes[rng.Intn(len(family.sizes))]
}

// smallerType desce um tamanho na escala, sem nunca descer abaixo de
// "small"; tamanhos desconhecidos também viram "small". As famílias m6i e
// t3 podem trocar para a variante graviton equivalente.
func smallerType(rng *rand.Rand, currentType string) string {
	parts := strings.SplitN(currentType, ".", 2)
	family, size := parts[0], ""
	if len(parts) == 2 {
		size = parts[1]
	}

	newSize := "small"
	if idx := sizeIndex(size); idx >= 0 {
		target := idx - 1
		if target < 1 {
			target = 1
		}
		newSize = sizeOrder[target]
	}

	if strings.HasPrefix(family, "m6i") && rng.Float64() < 0.5 {
		family = "m7g"
	}
	if strings.HasPrefix(family, "t3") && rng.Float64() < 0.5 {
		family = "t4g"
	}

	return family + "." + newSize
}

func sizeIndex(size string) int {
	for i, s := range sizeOrder {
		if s == size {
			return i
		}
	}
	return -1
}

func randomInstanceID(rng *rand.Rand) string {
	id := make([]byte, 17)
	for i := range id {
		id[i] = hexDigits[rng.Intn(len(hexDigits))]
	}
	return "i-" + string(id)
}

func roundCents(value float64) float64 {
	return math.Round(value*100) / 100
}

func formatAmount(value float64) string {
	return strconv.FormatFloat(value, 'f', 2, 64)
}
