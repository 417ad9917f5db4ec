// Package filacolia provides an embeddable Go client for the Filacolia
// question-answering engine.
//
// The client ranks the Filocalia corpus in process. An optional
// Redis or Valkey server caches composed answers.
//
//	client, _ := filacolia.New(ctx)
//	defer client.Close()
//
//	a, _ := client.Ask(ctx, "oração do coração", filacolia.Short)
//	fmt.Println(a.Content)
//	if a.HasMoreDetails {
//	    a, _ = client.Ask(ctx, "oração do coração", filacolia.Full)
//	}
//
// Custom corpora replace the built-in one:
//
//	client, _ := filacolia.New(ctx,
//	    filacolia.WithDocuments(filacolia.Document{
//	        Content: "...", Volume: "Tomo 1", Chapter: "Prólogo", Source: "prologo",
//	    }),
//	    filacolia.WithRedis("localhost:6379", ""),
//	)
package filacolia
