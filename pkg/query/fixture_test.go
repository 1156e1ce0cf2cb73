package query

import (
	"github.com/doodlesbykumbi/producer-console/pkg/model"
)

func producer(id, tenant, name string, status model.Status, typ model.ProducerType, eudr string) model.Producer {
	return model.Producer{
		ID:       id,
		TenantID: tenant,
		Name:     name,
		Type:     typ,
		Serasa:   "3/4",
		EUDR:     model.Coverage(eudr),
		Status:   status,
	}
}

// fixture is eleven producers in tenant-1 and two in tenant-2.
func fixture() []model.Producer {
	const t1, t2 = "tenant-1", "tenant-2"
	return []model.Producer{
		producer("p01", t1, "João Miguel Oliveira", model.StatusCreated, model.ProducerTypeIndividual, "4/4"),
		producer("p02", t1, "Carolina Almeida Pereira", model.StatusInReview, model.ProducerTypeFarmGroup, "2/4"),
		producer("p03", t1, "Ana Paula Santos", model.StatusInReview, model.ProducerTypeIndividual, "0/4"),
		producer("p04", t1, "Bruno Silva", model.StatusCreated, model.ProducerTypeCooperative, "1/4"),
		producer("p05", t1, "Lucas Martins", model.StatusApproved, model.ProducerTypeFarmGroup, "4/4"),
		producer("p06", t1, "Marcos Costa", model.StatusCreated, model.ProducerTypeIndividual, "0/4"),
		producer("p07", t1, "Ricardo Ferreira", model.StatusInReview, model.ProducerTypeCooperative, "3/4"),
		producer("p08", t1, "Pedro Henrique Andrade", model.StatusRejected, model.ProducerTypeIndividual, "0/4"),
		producer("p09", t1, "Juliana Rodrigues", model.StatusCreated, model.ProducerTypeFarmGroup, "2/4"),
		producer("p10", t1, "Fernando Alves", model.StatusInReview, model.ProducerTypeIndividual, "4/4"),
		producer("p11", t1, "Gustavo Lima", model.StatusApproved, model.ProducerTypeCooperative, "0/4"),
		producer("q01", t2, "Mariana Souza", model.StatusApproved, model.ProducerTypeIndividual, "4/4"),
		producer("q02", t2, "Luana Barbosa", model.StatusCreated, model.ProducerTypeFarmGroup, "0/4"),
	}
}

func ids(items []model.Producer) []string {
	out := make([]string, 0, len(items))
	for _, p := range items {
		out = append(out, p.ID)
	}
	return out
}
