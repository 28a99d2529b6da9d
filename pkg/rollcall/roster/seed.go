package roster

import (
	"strconv"

	"github.com/ukaji3/rollcall-go/pkg/rollcall/models"
	"github.com/ukaji3/rollcall-go/pkg/rollcall/sheet"
)

// NameHeader is the name column label of the roster source.
const NameHeader = "Student Name"

var sampleNames = []string{
	"Aarthy S", "Adhithya R", "Aishwarya M", "Akash K", "Anand S",
	"Anitha V", "Aravind P", "Ashok Kumar S", "Aswath R", "Bavana S",
	"Bharath K", "Bhavya S", "Charan S", "Darshini R", "David S",
	"Deepak K", "Divya S", "Ganesh R", "Gokul S", "Harini V",
	"Harsha V", "Hemalatha S", "Ishwarya S", "Jagan S", "Jai Surya P",
	"Janani S", "Kavin S", "Keerthana S", "Kiran S", "Kishore R",
	"Lakshmi S", "Madhan S", "Mahesh K", "Malini S", "Manoj K",
	"Meena S", "Mithra S", "Murali S", "Naveen K", "Nivetha S",
	"Padma S", "Praveen K", "Preethi S", "Priya S", "Rahul S",
	"Rajesh K", "Ramesh S", "Ranjeeth S", "Sabari S", "Sai Kiran R",
	"Sanjay S", "Sarath K", "Sathish S", "Sharon S", "Siddarth S",
	"Siva S", "Sneha S", "Sowmiya S", "Sri Ranjani S", "Sudharsan S",
	"Surya P", "Swetha S", "Teja S", "Venkatesh K",
}

// SampleStudents returns a 64-student demo class with rolls 1..64.
func SampleStudents() []models.Student {
	out := make([]models.Student, len(sampleNames))
	for i, name := range sampleNames {
		out[i] = models.Student{Roll: strconv.Itoa(i + 1), Name: name}
	}
	return out
}

// Write saves students as a roster workbook. Rolls without leading zeros are stored as numbers.
func Write(path string, students []models.Student) error {
	f, err := sheet.NewWorkbook("Sheet1")
	if err != nil {
		return err
	}
	defer f.Close()

	rows := [][]interface{}{{RollHeader, NameHeader}}
	for _, s := range students {
		var roll interface{} = s.Roll
		if sheet.CanonicalNumber(s.Roll) == s.Roll {
			roll = sheet.ParseValue(s.Roll)
		}
		rows = append(rows, []interface{}{roll, s.Name})
	}
	if err := sheet.WriteRows(f, "Sheet1", rows); err != nil {
		return err
	}
	return f.SaveAs(path)
}
