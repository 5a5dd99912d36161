package advisor

import (
	"context"
	"encoding/json"
	"errors"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"leafcare/internal/analysis"
	"leafcare/internal/catalog"
	"leafcare/internal/diagnose"
	"leafcare/internal/identify"
	"leafcare/internal/store"
)

// failingStore rejects every write.
type failingStore struct{ store.MemStore }

func (f *failingStore) SaveIdentification(string, *analysis.Result) (string, error) {
	return "", errors.New("disk full")
}

func (f *failingStore) SaveDiagnosis(*diagnose.Input, *diagnose.Result) (string, error) {
	return "", errors.New("disk full")
}

var _ = ginkgo.Describe("Service", func() {
	var (
		ctx context.Context
		st  *store.MemStore
		svc *Service
	)

	ginkgo.BeforeEach(func() {
		ctx = context.Background()
		st = store.NewMemStore()
		svc = New(catalog.Default(), identify.NewSeeded(1), st)
	})

	ginkgo.Describe("IdentifyAndAnalyze", func() {
		ginkgo.It("resolves an exact name, analyses it and records the result", func() {
			rep, err := svc.IdentifyAndAnalyze(ctx, "Ficus")
			gomega.Expect(err).To(gomega.Succeed())
			gomega.Expect(rep.Identified).To(gomega.BeTrue())
			gomega.Expect(rep.Exact).To(gomega.BeTrue())
			gomega.Expect(rep.EntryID).To(gomega.Equal("ficus"))
			gomega.Expect(rep.Analysis.PlantName).To(gomega.Equal("Ficus"))
			gomega.Expect(rep.Analysis.Species).To(gomega.Equal("Ficus lyrata"))
			gomega.Expect(rep.Analysis.HealthIssues).To(gomega.HaveLen(1))
			gomega.Expect(rep.RecordID).NotTo(gomega.BeEmpty())

			rec, err := st.Get(rep.RecordID)
			gomega.Expect(err).To(gomega.Succeed())
			gomega.Expect(rec.Kind).To(gomega.Equal(store.KindIdentification))
			gomega.Expect(rec.Query).To(gomega.Equal("Ficus"))

			var stored analysis.Result
			gomega.Expect(json.Unmarshal(rec.Payload, &stored)).To(gomega.Succeed())
			gomega.Expect(stored.Status).To(gomega.Equal(rep.Analysis.Status))
		})

		ginkgo.It("falls back to the generic analysis for an unknown plant", func() {
			rep, err := svc.IdentifyAndAnalyze(ctx, "baobab")
			gomega.Expect(err).To(gomega.Succeed())
			gomega.Expect(rep.Identified).To(gomega.BeFalse())
			gomega.Expect(rep.EntryID).To(gomega.Equal(catalog.UnidentifiedID))
			gomega.Expect(rep.Analysis).To(gomega.Equal(analysis.Generic()))
		})
	})

	ginkgo.Describe("IdentifyFromImageMetadata", func() {
		ginkgo.It("identifies a plant named in the filename", func() {
			rep, err := svc.IdentifyFromImageMetadata(ctx, "monstera_deliciosa.jpg", "")
			gomega.Expect(err).To(gomega.Succeed())
			gomega.Expect(rep.EntryID).To(gomega.Equal("monstera"))
			gomega.Expect(rep.Score).To(gomega.BeNumerically(">=", identify.MinImageScore))
		})

		ginkgo.It("uses the description when the filename is opaque", func() {
			rep, err := svc.IdentifyFromImageMetadata(ctx, "IMG_0042.jpg", "une orchidée Phalaenopsis en fleurs")
			gomega.Expect(err).To(gomega.Succeed())
			gomega.Expect(rep.EntryID).To(gomega.Equal("orchidee"))

			rec, err := st.Get(rep.RecordID)
			gomega.Expect(err).To(gomega.Succeed())
			gomega.Expect(rec.Query).To(gomega.Equal("IMG_0042.jpg (une orchidée Phalaenopsis en fleurs)"))
		})

		ginkgo.It("guesses among the top candidates repeatably for a seeded source", func() {
			other := New(catalog.Default(), identify.NewSeeded(1), nil)
			for i := 0; i < 5; i++ {
				a, err := svc.IdentifyFromImageMetadata(ctx, "photo.jpg", "")
				gomega.Expect(err).To(gomega.Succeed())
				b, err := other.IdentifyFromImageMetadata(ctx, "photo.jpg", "")
				gomega.Expect(err).To(gomega.Succeed())
				gomega.Expect(a.EntryID).To(gomega.Equal(b.EntryID))
				gomega.Expect(a.Analysis).To(gomega.Equal(b.Analysis))
			}
		})
	})

	ginkgo.Describe("Diagnose", func() {
		ginkgo.It("diagnoses overwatering and records the questionnaire", func() {
			in := diagnose.Input{
				PlantName:    "Monstera",
				LastWatering: diagnose.WateredToday,
				Temperature:  diagnose.Normal,
				Symptoms:     diagnose.Symptoms{YellowLeaves: true, DroppingLeaves: true},
			}
			rep, err := svc.Diagnose(ctx, in)
			gomega.Expect(err).To(gomega.Succeed())
			gomega.Expect(rep.Result.Status).To(gomega.Equal(catalog.Warning))
			gomega.Expect(rep.Result.ActionRequired).To(gomega.BeTrue())
			gomega.Expect(rep.Result.Diagnosis).To(gomega.ContainSubstring("1. Réduisez la fréquence d'arrosage"))

			history, err := svc.History(ctx, "monstera")
			gomega.Expect(err).To(gomega.Succeed())
			gomega.Expect(history).To(gomega.HaveLen(1))
			gomega.Expect(history[0].ID).To(gomega.Equal(rep.RecordID))
		})
	})

	ginkgo.Describe("History", func() {
		ginkgo.It("lists identifications and diagnoses newest first", func() {
			first, err := svc.IdentifyAndAnalyze(ctx, "Lavande")
			gomega.Expect(err).To(gomega.Succeed())
			second, err := svc.Diagnose(ctx, diagnose.Input{PlantName: "lavande"})
			gomega.Expect(err).To(gomega.Succeed())

			history, err := svc.History(ctx, "LAVANDE")
			gomega.Expect(err).To(gomega.Succeed())
			gomega.Expect(history).To(gomega.HaveLen(2))
			gomega.Expect(history[0].ID).To(gomega.Equal(second.RecordID))
			gomega.Expect(history[1].ID).To(gomega.Equal(first.RecordID))
		})

		ginkgo.It("fails without a store", func() {
			_, err := New(catalog.Default(), nil, nil).History(ctx, "Lavande")
			gomega.Expect(err).To(gomega.MatchError(ErrNoStore))
		})
	})

	ginkgo.Context("without a store", func() {
		ginkgo.It("returns results without record IDs", func() {
			svc = New(catalog.Default(), nil, nil)
			rep, err := svc.IdentifyAndAnalyze(ctx, "Cactus")
			gomega.Expect(err).To(gomega.Succeed())
			gomega.Expect(rep.RecordID).To(gomega.BeEmpty())

			drep, err := svc.Diagnose(ctx, diagnose.Input{PlantName: "Cactus"})
			gomega.Expect(err).To(gomega.Succeed())
			gomega.Expect(drep.RecordID).To(gomega.BeEmpty())
		})
	})

	ginkgo.Context("when the store fails", func() {
		ginkgo.It("surfaces the error", func() {
			svc = New(catalog.Default(), nil, &failingStore{})
			_, err := svc.IdentifyAndAnalyze(ctx, "Ficus")
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("disk full")))

			_, err = svc.Diagnose(ctx, diagnose.Input{PlantName: "Ficus"})
			gomega.Expect(err).To(gomega.MatchError(gomega.ContainSubstring("save diagnosis")))
		})
	})

	ginkgo.Context("with a canceled context", func() {
		ginkgo.It("does no work", func() {
			canceled, cancel := context.WithCancel(ctx)
			cancel()
			_, err := svc.IdentifyAndAnalyze(canceled, "Ficus")
			gomega.Expect(err).To(gomega.MatchError(context.Canceled))
			_, err = svc.IdentifyFromImageMetadata(canceled, "ficus.jpg", "")
			gomega.Expect(err).To(gomega.MatchError(context.Canceled))
			_, err = svc.Diagnose(canceled, diagnose.Input{})
			gomega.Expect(err).To(gomega.MatchError(context.Canceled))

			history, err := st.History("ficus")
			gomega.Expect(err).To(gomega.Succeed())
			gomega.Expect(history).To(gomega.BeEmpty())
		})
	})
})
