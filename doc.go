// Package lotlist turns inventory spreadsheet rows into marketplace listing
// files, attaches a matching photo to each, and builds an HTML preview of
// everything it wrote.
//
// # Quick Start
//
// Run the whole pipeline over the default layout (./input, ./output):
//
//	gen := lotlist.NewGenerator(lotlist.Layout{}, lotlist.GeneratorOptions{
//	    Preview: &lotlist.PreviewOptions{Title: "Spring Auction"},
//	})
//	res, err := gen.Run(ctx)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(res.Summary)
//
// # Templates
//
// A listing template is plain text with {Column} placeholders:
//
//	FOR SALE: {Description}
//	Model: {ModelNo}
//	Lot #: {LotNo}
//
// Render substitutes each column of a row. Blank values, and placeholders
// naming a column the data file does not have, become "Not specified".
//
// # Layout
//
// The input directory holds the data file (inventory.csv or an .xlsx
// workbook), template.txt and a photos/ directory. Photos are matched by
// exact file name, <LotNo>.jpg first, then .jpeg, .png, .gif and .bmp. The
// output directory receives one Lot_<id>.txt per row, the copied photos and
// preview.html.
//
// # Lower-level API
//
// Processor renders rows into an existing directory and AssemblePreview
// scans a directory for listings; both can be used without a Generator:
//
//	p := lotlist.NewProcessor("out", "photos",
//	    lotlist.WithCollisionPolicy(lotlist.CollisionSuffix))
//	sum, err := p.Process(ctx, tmpl, rows)
package lotlist
