package template

const StyleCSS = `
body {
  margin: 0;
  font-family: -apple-system, "Segoe UI", Roboto, "Helvetica Neue", Arial, sans-serif;
  line-height: 1.5;
  color: #212529;
  background-color: #fff;
}

#app > main {
  max-width: 1140px;
  margin: 0 auto;
  padding: 20px;
  box-sizing: border-box;
}

.navbar {
  display: flex;
  gap: 1em;
  align-items: center;
  padding: 0.5em 1em;
  background-color: #343a40;
}

.navbar a,
.navbar .brand {
  color: #fff;
  text-decoration: none;
}

.navbar .brand {
  font-weight: bold;
  margin-right: 1em;
}

h1 {
  font-size: 1.75em;
  margin: 0.5em 0 1em;
  color: #2c3e50;
}

.table {
  width: 100%;
  border-collapse: collapse;
  margin-bottom: 1em;
}

.table th,
.table td {
  padding: 0.5em;
  border-top: 1px solid #dee2e6;
  text-align: left;
  vertical-align: top;
}

dl {
  display: grid;
  grid-template-columns: max-content auto;
  gap: 0.25em 1em;
}

dt {
  font-weight: bold;
}

dd {
  margin: 0;
}

img {
  max-width: 100%;
  height: auto;
}

.star {
  color: #f0ad4e;
}

.pager {
  display: flex;
  gap: 1em;
}
`
