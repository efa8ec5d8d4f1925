package main

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	dto "github.com/prometheus/client_model/go"
	"github.com/prometheus/common/expfmt"

	"github.com/tailored-agentic-units/statebox/box"
)

func printStatus(w io.Writer, st box.Status) {
	last := "never"
	if st.LastObservedAt != nil {
		last = st.LastObservedAt.Format(time.RFC3339Nano)
	}

	fmt.Fprintf(w, "  name:              %s\n", st.Name)
	fmt.Fprintf(w, "  id:                %s\n", st.ID)
	fmt.Fprintf(w, "  observation_state: %s\n", st.Phase)
	fmt.Fprintf(w, "  physical_state:    %s\n", st.PhysicalState)
	fmt.Fprintf(w, "  mental_state:      %s\n", st.MentalState)
	fmt.Fprintf(w, "  age_seconds:       %.4f\n", st.AgeSeconds)
	fmt.Fprintf(w, "  last_interaction:  %s\n", last)
}

func printObservation(w io.Writer, obs box.Observation) {
	intent := obs.Intent
	if intent == "" {
		intent = `""`
	}
	fmt.Fprintf(w, "%s observer sees: %s matter, %s mind\n", intent, obs.PhysicalState, obs.MentalState)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func printMetrics(w io.Writer, families []*dto.MetricFamily) {
	fmt.Fprintln(w)
	for _, mf := range families {
		if _, err := expfmt.MetricFamilyToText(w, mf); err != nil {
			fmt.Fprintf(w, "# %s: %v\n", mf.GetName(), err)
		}
	}
}
