package insighting

import (
	"sort"

	"github.com/vfg2006/ads-dashboard-api/internal/domain"
)

// Groupable é qualquer entidade que possa ser agrupada por objetivo
type Groupable interface {
	GetObjective() *string
	GetInsights() *domain.InsightsData
}

// Partition é um grupo de entidades que compartilham o mesmo objetivo
type Partition[T Groupable] struct {
	Objective string
	Members   []T
}

// ObjectiveKey devolve a chave de agrupamento, UNKNOWN quando não há objetivo
func ObjectiveKey(objective *string) string {
	if objective == nil || *objective == "" {
		return domain.UnknownObjective
	}
	return *objective
}

// PartitionByObjective separa as entidades por objetivo, mantendo a ordem de
// entrada dentro de cada grupo e ordenando os grupos pela chave.
func PartitionByObjective[T Groupable](entities []T) []Partition[T] {
	index := make(map[string]int)
	partitions := make([]Partition[T], 0)

	for _, e := range entities {
		key := ObjectiveKey(e.GetObjective())

		i, ok := index[key]
		if !ok {
			i = len(partitions)
			index[key] = i
			partitions = append(partitions, Partition[T]{Objective: key})
		}

		partitions[i].Members = append(partitions[i].Members, e)
	}

	sort.Slice(partitions, func(i, j int) bool {
		return partitions[i].Objective < partitions[j].Objective
	})

	return partitions
}

// GroupByObjective agrupa campanhas por objetivo e consolida as métricas de cada grupo.
// Campanhas sem insights contam como membros, mas não somam métricas.
func GroupByObjective(campaigns []*domain.Campaign) []*domain.ObjectiveGroup {
	valid := make([]*domain.Campaign, 0, len(campaigns))
	for _, c := range campaigns {
		if c != nil {
			valid = append(valid, c)
		}
	}

	partitions := PartitionByObjective(valid)
	groups := make([]*domain.ObjectiveGroup, 0, len(partitions))

	for _, p := range partitions {
		insights := make([]*domain.InsightsData, 0, len(p.Members))
		for _, c := range p.Members {
			insights = append(insights, c.GetInsights())
		}

		groups = append(groups, &domain.ObjectiveGroup{
			Objective:          p.Objective,
			Campaigns:          p.Members,
			AggregatedInsights: Aggregate(insights),
		})
	}

	return groups
}
