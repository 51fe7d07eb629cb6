// Package datasettest provides launch record fixtures for tests.
package datasettest

import (
	"strings"
	"testing"

	"github.com/rhobs/launch-dash/pkg/dataset"
)

// CSV is a reduced launch records table covering all four sites, both
// outcomes and five booster categories.
const CSV = `,Flight Number,Launch Site,class,Payload Mass (kg),Booster Version,Booster Version Category
0,1,CCAFS LC-40,0,0.0,F9 v1.0  B0003,v1.0
1,2,CCAFS LC-40,0,0.0,F9 v1.0  B0004,v1.0
2,3,CCAFS LC-40,0,525.0,F9 v1.0  B0005,v1.0
3,4,CCAFS LC-40,0,500.0,F9 v1.0  B0006,v1.0
4,5,CCAFS LC-40,0,677.0,F9 v1.0  B0007,v1.0
5,7,CCAFS LC-40,0,3170.0,F9 v1.1,v1.1
6,6,VAFB SLC-4E,0,500.0,F9 v1.1  B1003,v1.1
7,30,KSC LC-39A,1,2490.0,F9 FT B1031.1,FT
8,31,KSC LC-39A,0,5600.0,F9 FT B1030,FT
9,32,KSC LC-39A,1,5300.0,F9 FT B1021.2,FT
10,40,CCAFS SLC-40,1,9600.0,F9 B4 B1041.1,B4
11,45,CCAFS SLC-40,1,3600.0,F9 B5 B1046.1,B5
12,50,VAFB SLC-4E,1,9600.0,F9 B4 B1041.2,B4
`

// Sample loads CSV, failing the test on error.
func Sample(t testing.TB) *dataset.Dataset {
	t.Helper()
	ds, err := dataset.Load(strings.NewReader(CSV))
	if err != nil {
		t.Fatalf("failed to load sample dataset: %v", err)
	}
	return ds
}
