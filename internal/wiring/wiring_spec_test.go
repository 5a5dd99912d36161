package wiring

import (
	"context"
	"os"
	"path/filepath"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega"

	"leafcare/internal/catalog"
	"leafcare/internal/config"
	"leafcare/internal/diagnose"
)

const customCatalog = `plants:
  - id: basilic
    name: Basilic
    types: [Ocimum basilicum]
    keywords: [aromatique, pesto]
    care:
      watering: Arroser souvent
      light: Plein soleil
      temperature: 20-30°C
`

var _ = ginkgo.Describe("Open", func() {
	var (
		dir string
		cfg config.Config
	)

	ginkgo.BeforeEach(func() {
		dir = ginkgo.GinkgoT().TempDir()
		cfg = config.Default()
		cfg.DB = filepath.Join(dir, "state", "leafcare.db")
	})

	ginkgo.It("persists results across reopen", func() {
		app, err := Open(cfg, false)
		gomega.Expect(err).To(gomega.Succeed())
		rep, err := app.Service.IdentifyAndAnalyze(context.Background(), "Ficus")
		gomega.Expect(err).To(gomega.Succeed())
		_, err = app.Service.Diagnose(context.Background(), diagnose.Input{PlantName: "Ficus"})
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(app.Close()).To(gomega.Succeed())

		app, err = Open(cfg, false)
		gomega.Expect(err).To(gomega.Succeed())
		defer app.Close()
		history, err := app.Service.History(context.Background(), "ficus")
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(history).To(gomega.HaveLen(2))
		gomega.Expect(history[1].ID).To(gomega.Equal(rep.RecordID))
	})

	ginkgo.It("skips the store when asked", func() {
		app, err := Open(cfg, true)
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(app.Store).To(gomega.BeNil())
		gomega.Expect(app.Close()).To(gomega.Succeed())
		_, err = os.Stat(cfg.DB)
		gomega.Expect(os.IsNotExist(err)).To(gomega.BeTrue())
	})

	ginkgo.It("uses the embedded catalog by default", func() {
		app, err := Open(cfg, true)
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(app.Entries).To(gomega.HaveLen(len(catalog.Default())))
	})

	ginkgo.It("loads a catalog file", func() {
		cfg.Catalog = filepath.Join(dir, "plants.yaml")
		gomega.Expect(os.WriteFile(cfg.Catalog, []byte(customCatalog), 0o644)).To(gomega.Succeed())

		app, err := Open(cfg, true)
		gomega.Expect(err).To(gomega.Succeed())
		rep, err := app.Service.IdentifyAndAnalyze(context.Background(), "basilic")
		gomega.Expect(err).To(gomega.Succeed())
		gomega.Expect(rep.EntryID).To(gomega.Equal("basilic"))
		gomega.Expect(rep.Analysis.Species).To(gomega.Equal("Ocimum basilicum"))
	})

	ginkgo.It("rejects an invalid catalog", func() {
		cfg.Catalog = filepath.Join(dir, "broken.yaml")
		gomega.Expect(os.WriteFile(cfg.Catalog, []byte("plants:\n  - name: Sans id\n"), 0o644)).To(gomega.Succeed())
		_, err := Open(cfg, true)
		gomega.Expect(err).To(gomega.HaveOccurred())
	})

	ginkgo.It("repeats image guesses for a fixed seed", func() {
		cfg.Seed = 99
		a, err := Open(cfg, true)
		gomega.Expect(err).To(gomega.Succeed())
		b, err := Open(cfg, true)
		gomega.Expect(err).To(gomega.Succeed())
		for i := 0; i < 4; i++ {
			ra, err := a.Service.IdentifyFromImageMetadata(context.Background(), "IMG_1234.jpg", "")
			gomega.Expect(err).To(gomega.Succeed())
			rb, err := b.Service.IdentifyFromImageMetadata(context.Background(), "IMG_1234.jpg", "")
			gomega.Expect(err).To(gomega.Succeed())
			gomega.Expect(ra.EntryID).To(gomega.Equal(rb.EntryID))
		}
	})
})
