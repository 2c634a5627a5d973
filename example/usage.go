package main

import (
	"fmt"
	"image/png"
	"os"

	"github.com/ashokshau/qriso"
)

func main() {
	// The content to encode
	content := "https://www.google.com"
	filename := "test_qr.png"

	fmt.Printf("Generating QR code for: %s\n", content)

	// LevelM is a good balance (15% error correction)
	encoder := qriso.NewEncoder(qriso.Options{Level: qriso.LevelM})
	sym, err := encoder.Encode(content)
	if err != nil {
		fmt.Printf("Error creating QR: %v\n", err)
		return
	}

	// Open file for writing
	file, err := os.Create(filename)
	if err != nil {
		fmt.Printf("Error creating file: %v\n", err)
		return
	}
	defer file.Close()

	// Scale 10 means each module (dot) is 10x10 pixels
	if err := qriso.WriteImage(file, sym, qriso.WriteOptions{Scale: 10}); err != nil {
		fmt.Printf("Error writing PNG: %v\n", err)
		return
	}

	fmt.Printf("Successfully saved QR code to %s\n", filename)

	// Verify by reading it back
	fmt.Println("Verifying by reading the file back...")

	readFile, err := os.Open(filename)
	if err != nil {
		fmt.Printf("Error opening file: %v\n", err)
		return
	}
	defer readFile.Close()

	img, err := png.Decode(readFile)
	if err != nil {
		fmt.Printf("Error decoding PNG: %v\n", err)
		return
	}

	decoded, err := qriso.NewDecoder().Decode(img)
	if err != nil {
		fmt.Printf("Error decoding QR: %v\n", err)
		return
	}

	fmt.Printf("Decoded content: %s (version %d, level %s, %d errors corrected)\n",
		decoded.Content, decoded.Version, decoded.Level, decoded.CorrectedErrors)

	if decoded.Content == content {
		fmt.Println("SUCCESS: Decoded content matches original!")
	} else {
		fmt.Println("FAILURE: Content mismatch.")
	}
}
