package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"leafcare/internal/identify"
)

var imageFlags struct {
	file        string
	description string
	explain     bool
	jsonOut     bool
}

var imageCmd = &cobra.Command{
	Use:   "image",
	Short: "Identify a plant from a photo's filename and description",
	Long: `Identify a plant from image metadata only: the filename and an optional
description. The image content is not read.

Weak matches are a guess among the three best-scoring plants; use --seed
to make the guess repeatable.`,
	Args: cobra.NoArgs,
	RunE: runImage,
}

func init() {
	f := imageCmd.Flags()
	f.StringVarP(&imageFlags.file, "file", "f", "", "Image filename (only the name is used)")
	f.StringVarP(&imageFlags.description, "description", "d", "", "Free-text description of the photo")
	f.BoolVar(&imageFlags.explain, "explain", false, "Show the per-plant scores behind the match")
	f.BoolVar(&imageFlags.jsonOut, "json", false, "Print JSON")
}

func runImage(cmd *cobra.Command, _ []string) error {
	if imageFlags.file == "" && imageFlags.description == "" {
		return fmt.Errorf("--file or --description is required")
	}

	app, err := openApp(false)
	if err != nil {
		return err
	}
	defer app.Close()

	rep, err := app.Service.IdentifyFromImageMetadata(cmd.Context(), imageFlags.file, imageFlags.description)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	if imageFlags.jsonOut {
		return writeJSON(out, rep)
	}
	if imageFlags.explain {
		if imageFlags.file != "" {
			writeCandidates(out, "Scores du nom de fichier :",
				app.Service.Candidates(identify.Query{Text: imageFlags.file, Source: identify.SourceFilename}))
		}
		if imageFlags.description != "" {
			writeCandidates(out, "Scores de la description :",
				app.Service.Candidates(identify.Query{Text: imageFlags.description, Source: identify.SourceDescription}))
		}
	}
	writeReport(out, rep)
	return nil
}
