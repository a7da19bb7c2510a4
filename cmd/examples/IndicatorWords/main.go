package main

import (
	"fmt"

	"spamsvm/pkg/dataprep"
	"spamsvm/pkg/model"
)

func main() {
	docs := []string{
		"buy now cheap",
		"meeting at noon",
		"cheap loans now",
		"project meeting notes",
	}
	labels := []float64{dataprep.Spam, dataprep.Ham, dataprep.Spam, dataprep.Ham}

	words, err := dataprep.FindFrequentIndicatorWords(docs, labels, 1)
	if err != nil {
		panic(err)
	}
	spam, ham := words.Sorted()
	fmt.Println("spam-only:", spam)
	fmt.Println("ham-only: ", ham)

	X := dataprep.DocumentToFeatures(docs, words)
	for i, doc := range docs {
		fmt.Printf("  %-24q → %v (label %+g)\n", doc, X.Row(i), labels[i])
	}

	svm, err := model.NewLinearSVM(X, labels, 0.01)
	if err != nil {
		panic(err)
	}
	svm.Train(20, 0.1)

	unseen := []string{"cheap cheap offer now", "notes from the meeting"}
	scores, err := svm.Predict(dataprep.DocumentToFeatures(unseen, words))
	if err != nil {
		panic(err)
	}
	for i, doc := range unseen {
		fmt.Printf("  %-24q score %+.3f → %+g\n", doc, scores[i], model.Sign(scores)[i])
	}
}
